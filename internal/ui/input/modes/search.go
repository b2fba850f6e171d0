package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"filmrec/internal/ui/input/keys"
	"filmrec/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(km keys.KeyMap, ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", km, ti),
	}
}
