package models

// Block types of the rich text body.
const (
	BlockTypeText  = "block"
	BlockTypeImage = "image"
	BlockTypeCode  = "code"
)

// Span is an inline run of text inside a text block.
type Span struct {
	Type  string   `bson:"_type" json:"_type"`
	Key   string   `bson:"_key,omitempty" json:"_key,omitempty"`
	Text  string   `bson:"text" json:"text"`
	Marks []string `bson:"marks,omitempty" json:"marks,omitempty"`
}

// Block is one element of a Portable Text array. Only the fields relevant to
// its Type are populated: text blocks carry Style/Children, image blocks carry
// Image fields, code blocks carry Code.
type Block struct {
	Type     string `bson:"_type" json:"_type"`
	Key      string `bson:"_key,omitempty" json:"_key,omitempty"`
	Style    string `bson:"style,omitempty" json:"style,omitempty"`
	ListItem string `bson:"listItem,omitempty" json:"listItem,omitempty"`
	Children []Span `bson:"children,omitempty" json:"children,omitempty"`

	Alt     string `bson:"alt,omitempty" json:"alt,omitempty"`
	Caption string `bson:"caption,omitempty" json:"caption,omitempty"`
	Code    string `bson:"code,omitempty" json:"code,omitempty"`
}

// IsText reports whether b is a text block.
func (b Block) IsText() bool {
	return b.Type == BlockTypeText
}

// Body is a Portable Text document.
type Body []Block
