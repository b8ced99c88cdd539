package element

// Constructor builds an element of a fixed tag from text content and
// attributes. Empty content means none.
type Constructor func(content string, attrs ...Attr) *Element

// Tag returns a Constructor for name. Options are applied to every element
// it builds, before the content and attributes. Calling the constructor
// panics with an *ArgumentError when name is blank.
func Tag(name string, options ...Option) Constructor {
	base := append([]Option(nil), options...)
	return func(content string, attrs ...Attr) *Element {
		opts := make([]Option, 0, len(base)+2)
		opts = append(opts, base...)
		if content != "" {
			opts = append(opts, WithContent(content))
		}
		opts = append(opts, WithAttrs(attrs...))
		return MustNew(name, opts...)
	}
}

// Shorthand constructors for common tags. Anchor builds <a> and OptionTag
// builds <option>, keeping A and Option free for attributes and options.
var (
	Abbr       = Tag("abbr")
	Anchor     = Tag("a")
	Area       = Tag("area")
	Article    = Tag("article")
	Audio      = Tag("audio")
	B          = Tag("b")
	Br         = Tag("br")
	Button     = Tag("button")
	Caption    = Tag("caption")
	Code       = Tag("code")
	Div        = Tag("div")
	Em         = Tag("em")
	Fieldset   = Tag("fieldset")
	Figcaption = Tag("figcaption")
	Figure     = Tag("figure")
	Form       = Tag("form")
	H1         = Tag("h1")
	H2         = Tag("h2")
	H3         = Tag("h3")
	Hr         = Tag("hr")
	I          = Tag("i")
	Iframe     = Tag("iframe")
	Img        = Tag("img")
	Input      = Tag("input")
	Label      = Tag("label")
	Legend     = Tag("legend")
	Li         = Tag("li")
	Nav        = Tag("nav")
	OptionTag  = Tag("option")
	P          = Tag("p")
	Section    = Tag("section")
	Select     = Tag("select")
	Span       = Tag("span")
	Strong     = Tag("strong")
	Table      = Tag("table")
	Td         = Tag("td")
	Textarea   = Tag("textarea")
	Th         = Tag("th")
	Tr         = Tag("tr")
	Ul         = Tag("ul")
	Video      = Tag("video")
)
