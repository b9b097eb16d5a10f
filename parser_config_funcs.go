package optset

// WithLeadingScan enables collection of positional arguments preceding the first
// recognized switch into ParseResult.Leading.
//
// Configuration example:
//
//	parser, err := NewParser([]*Option{
//	    MustOption("--force", WithType(Standalone)),
//	}, WithLeadingScan())
func WithLeadingScan() ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.scanLeading = true
	}
}

// WithScanLeading sets leading-positional scanning explicitly
func WithScanLeading(scan bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetScanLeading(scan)
	}
}
