package parser

// ctx selects which alternatives the ordered-choice loop attempts and
// which exclusion set the plain-text scanner falls back to, per the
// context-sensitive rules of spec section 4.2.
type ctx int

const (
	ctxTop         ctx = iota // top-level driver, spec 4.1
	ctxTemplateArg            // template argument value sub-grammar, spec 4.8
	ctxListItem               // rest-of-line list-item content, spec 4.6
	ctxTableCell              // table cell content, spec 4.9
	ctxHTMLBody               // HTML/ref container body, spec 4.7
)
