package clipboard

// Kind is the classified content type of a captured clipboard entry.
type Kind string

const (
	KindText     Kind = "Text"
	KindURL      Kind = "URL"
	KindRichText Kind = "RichText"
	KindImage    Kind = "Image"
	KindFile     Kind = "File"
)

// Folder returns the subdirectory under the data dir that artifacts of
// this kind are stored in.
func (k Kind) Folder() string {
	switch k {
	case KindURL:
		return "urls"
	case KindRichText:
		return "rich_text"
	case KindImage:
		return "images"
	case KindFile:
		return "files"
	default:
		return "text"
	}
}

// Prefix returns the artifact filename prefix for this kind.
func (k Kind) Prefix() string {
	switch k {
	case KindURL:
		return "url"
	case KindRichText:
		return "rich_text"
	case KindImage:
		return "image"
	case KindFile:
		return "file"
	default:
		return "text"
	}
}

// Ext returns the artifact file extension for this kind. File artifacts
// keep the extension of the source file instead.
func (k Kind) Ext() string {
	switch k {
	case KindRichText:
		return ".html"
	case KindImage:
		return ".png"
	case KindFile:
		return ""
	default:
		return ".txt"
	}
}
