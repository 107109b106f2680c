package content

import (
	"fmt"
	"strings"
)

// Kind classifies an interaction's content library into the closed set of
// behaviors the engine distinguishes. It is resolved once at construction;
// all later dispatch switches on it instead of re-comparing library strings.
type Kind int

const (
	// KindGeneric is any content library without special handling.
	KindGeneric Kind = iota
	// KindImage fits its dialog to the image's natural dimensions.
	KindImage
	// KindSummary opens a full-cover dialog and follows content height growth.
	KindSummary
	// KindBlanks opens a full-cover dialog.
	KindBlanks
	// KindDragQuestion cannot resize in place and tracks its own pixel size.
	KindDragQuestion
	// KindSentinel is a timing-only marker with no real content (subtitle-like).
	KindSentinel
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSummary:
		return "summary"
	case KindBlanks:
		return "blanks"
	case KindDragQuestion:
		return "dragquestion"
	case KindSentinel:
		return "sentinel"
	default:
		return "generic"
	}
}

// FullCoverDialog reports whether the kind's dialog covers the whole video
// area, in which case anchor-relative positioning is skipped.
func (k Kind) FullCoverDialog() bool {
	return k == KindSummary || k == KindBlanks
}

// KindOf resolves a library identifier ("IV.Image", "IV.Image 1.2", ...) to
// its Kind. Unknown libraries are Generic.
func KindOf(library string) Kind {
	switch machineName(library) {
	case "IV.Image":
		return KindImage
	case "IV.Summary":
		return KindSummary
	case "IV.Blanks":
		return KindBlanks
	case "IV.DragQuestion":
		return KindDragQuestion
	case "IV.Nil":
		return KindSentinel
	default:
		return KindGeneric
	}
}

// machineName strips a trailing version from a library identifier.
func machineName(library string) string {
	if i := strings.IndexByte(library, ' '); i >= 0 {
		return library[:i]
	}
	return library
}

// FileMeta carries metadata about a content file. Width and Height are the
// natural pixel dimensions when known up front; zero means unknown.
type FileMeta struct {
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Action describes what an interaction runs: the content library and its
// library-specific parameters.
type Action struct {
	Library string         `yaml:"library"`
	Params  map[string]any `yaml:"params,omitempty"`
	File    *FileMeta      `yaml:"file,omitempty"`
}

// Kind resolves the action's content kind.
func (a Action) Kind() Kind {
	return KindOf(a.Library)
}

// ClassName derives the CSS class for a rendered interaction from the library
// identifier: lowercased namespace and name joined by "-", suffixed
// "-interaction". "IV.DragQuestion" becomes "iv-dragquestion-interaction".
func (a Action) ClassName() string {
	name := strings.ToLower(machineName(a.Library))
	name = strings.ReplaceAll(name, ".", "-")
	return name + "-interaction"
}

// Copyright is the metadata a runnable may expose about its content.
type Copyright struct {
	Label   string
	Source  string
	License string
}

// HumanizeTime formats seconds as M:SS (or H:MM:SS past the hour), matching
// the label format used on copyright entries and timeline tooltips.
func HumanizeTime(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
