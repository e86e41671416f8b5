// Package jsontree parses JSON text into an owned, tagged value tree and
// provides typed accessors and mutators over that tree.
//
// # Basic Usage
//
//	var v jsontree.Value
//	if err := jsontree.Parse(&v, `{"name":"gopher","tags":["a","b"]}`); err != nil {
//		status := jsontree.StatusOf(err) // e.g. jsontree.StatusMissingColon
//		...
//	}
//	defer v.Free()
//
//	name := v.FindObjectValue([]byte("name")).StringValue()
//	tags := v.FindObjectValue([]byte("tags"))
//	for i := 0; i < tags.ArraySize(); i++ {
//		fmt.Println(tags.Element(i).StringValue())
//	}
//
// # Ownership
//
// A Value owns its payload exclusively: string bytes, array elements and
// object members are never shared with the input text or with other Values.
// Setters free the previous payload before installing a new one, and Free
// releases a tree depth-first and leaves the Value null. A failed parse
// always leaves the target null.
//
// # Accessor contract
//
// Typed getters such as Number, StringValue or Element panic with a
// *ContractError when the Value holds a different type or the index is out
// of range. These are programming errors, distinct from parse errors, which
// are returned as *ParseError values carrying a Status.
//
// # Configuration
//
// Use NewParser for custom limits:
//
//	cfg := jsontree.HighSecurityConfig()
//	cfg.AllowTrailingContent = true
//	p := jsontree.NewParser(cfg)
//	err := p.Parse(&v, text)
//
// Nesting depth and input size are bounded by default; see DefaultConfig.
package jsontree
