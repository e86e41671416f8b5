package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/jsontree"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func gzipped(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.json", []byte(`{"a":[1,2]}`))
	bad := writeFile(t, "bad.json", []byte(`{"a" 1}`))

	out, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Equal(t, good+": OK\n", out)

	out, err = run(t, "", "check", good, bad)
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, good+": OK\n")
	assert.Contains(t, out, bad+": missing_colon at offset 5\n")
}

func TestCheckStdinAndGzip(t *testing.T) {
	out, err := run(t, " [true] ", "check", "-")
	require.NoError(t, err)
	assert.Equal(t, "-: OK\n", out)

	gz := writeFile(t, "doc.json.gz", gzipped(t, `{"compressed":true}`))
	out, err = run(t, "", "check", gz)
	require.NoError(t, err)
	assert.Equal(t, gz+": OK\n", out)
}

func TestCheckMissingFile(t *testing.T) {
	_, err := run(t, "", "check", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckFlags(t *testing.T) {
	out, err := run(t, "[[[1]]]", "check", "--max-depth", "2", "-")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "depth_limit")

	out, err = run(t, "1 2", "check", "-")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "root_not_singular")

	_, err = run(t, "1 2", "check", "--allow-trailing", "-")
	assert.NoError(t, err)

	out, err = run(t, "[1,2,3]", "check", "--max-size", "4", "-")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "size_limit")
}

func TestCheckGzipMaxSize(t *testing.T) {
	doc := "[" + strings.Repeat("0,", 1<<20) + "0]"
	gz := writeFile(t, "big.json.gz", gzipped(t, doc))

	out, err := run(t, "", "check", "--max-size", "16", gz)
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "size_limit")

	_, err = run(t, "", "check", gz)
	assert.NoError(t, err)
}

func TestReadInputLimit(t *testing.T) {
	doc := strings.Repeat("x", 100)
	gz := writeFile(t, "doc.gz", gzipped(t, doc))
	plain := writeFile(t, "doc.txt", []byte(doc))

	for _, name := range []string{gz, plain} {
		data, err := readInput(name, nil, 10)
		require.NoError(t, err)
		assert.Len(t, data, 11)

		data, err = readInput(name, nil, 0)
		require.NoError(t, err)
		assert.Equal(t, doc, string(data))
	}

	data, err := readInput("-", strings.NewReader(doc), 200)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))
}

func TestCheckEnvironment(t *testing.T) {
	t.Setenv("JSONTREE_MAX_DEPTH", "1")
	out, err := run(t, "[[]]", "check", "-")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "depth_limit")
}

func TestStringify(t *testing.T) {
	out, err := run(t, " { \"a\" : [ 1.5 , \"x\\ty\" , null ] } ", "stringify", "-")
	require.NoError(t, err)
	assert.Equal(t, `{"a":[1.5,"x\ty",null]}`+"\n", out)

	_, err = run(t, "[1,", "stringify", "-")
	assert.ErrorIs(t, err, jsontree.ErrExpectValue)
}

func TestStats(t *testing.T) {
	out, err := run(t, `{"a":[1,2,{"b":null}],"c":"s","d":true}`, "stats", "-")
	require.NoError(t, err)

	for _, want := range []string{
		"size:      39 B\n",
		"max depth: 3\n",
		"null:      1\n",
		"true:      1\n",
		"number:    2\n",
		"string:    1\n",
		"array:     1\n",
		"object:    2\n",
	} {
		assert.Contains(t, out, want)
	}
}

func TestCollectStats(t *testing.T) {
	var v jsontree.Value
	require.NoError(t, jsontree.Parse(&v, `[[[]],{},"x"]`))
	defer v.Free()

	st := collectStats(&v)
	assert.Equal(t, 2, st.maxDepth)
	assert.Equal(t, 3, st.counts[jsontree.TypeArray])
	assert.Equal(t, 1, st.counts[jsontree.TypeObject])
	assert.Equal(t, 1, st.counts[jsontree.TypeString])
}
