package engine

// Option configures a Document.
type Option func(*Document)

// WithContent sets the initial text.
func WithContent(text string) Option {
	return func(d *Document) {
		d.initContent = text
	}
}

// WithPath associates the document with a file.
func WithPath(path string) Option {
	return func(d *Document) {
		d.path = path
	}
}

// WithReadOnly rejects all edits.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}
