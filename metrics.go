package jsontree

import (
	"github.com/prometheus/client_golang/prometheus"
)

type parserCollector struct {
	parser *Parser

	parses     *prometheus.Desc
	failures   *prometheus.Desc
	errors     *prometheus.Desc
	bytes      *prometheus.Desc
	depth      *prometheus.Desc
	durationUs *prometheus.Desc
}

// NewPrometheusCollector returns a prometheus.Collector publishing the parse
// statistics of p. The collector still needs to be registered. It reports
// nothing when p was built with metrics disabled.
func NewPrometheusCollector(p *Parser, namespace string) prometheus.Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "jsontree", n)
	}
	return &parserCollector{
		parser:     p,
		parses:     prometheus.NewDesc(name("parses_total"), "Number of parse calls.", nil, nil),
		failures:   prometheus.NewDesc(name("parse_failures_total"), "Number of failed parse calls.", nil, nil),
		errors:     prometheus.NewDesc(name("parse_errors_total"), "Failed parse calls by status.", []string{"status"}, nil),
		bytes:      prometheus.NewDesc(name("parsed_bytes_total"), "Input bytes handed to the parser.", nil, nil),
		depth:      prometheus.NewDesc(name("parse_max_depth"), "Deepest nesting seen in any parse.", nil, nil),
		durationUs: prometheus.NewDesc(name("parse_duration_max_microseconds"), "Slowest parse observed.", nil, nil),
	}
}

func (c *parserCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.parses
	ch <- c.failures
	ch <- c.errors
	ch <- c.bytes
	ch <- c.depth
	ch <- c.durationUs
}

func (c *parserCollector) Collect(ch chan<- prometheus.Metric) {
	if c.parser.metrics == nil {
		return
	}
	m := c.parser.metrics.GetMetrics()

	ch <- prometheus.MustNewConstMetric(c.parses, prometheus.CounterValue, float64(m.TotalParses))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(m.FailedParses))
	for status, n := range m.ErrorsByStatus {
		ch <- prometheus.MustNewConstMetric(c.errors, prometheus.CounterValue, float64(n), status)
	}
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.CounterValue, float64(m.BytesParsed))
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(m.MaxDepth))
	ch <- prometheus.MustNewConstMetric(c.durationUs, prometheus.GaugeValue, float64(m.MaxProcessingTime.Microseconds()))
}
