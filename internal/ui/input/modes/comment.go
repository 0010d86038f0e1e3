package modes

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/ui/input/types"
)

// CommentMode edits the comment form: the rating stars or the text area,
// whichever has focus.
type CommentMode struct {
	TextInputMode
	step float64
}

func NewCommentMode(step float64) *CommentMode {
	return &CommentMode{
		TextInputMode: NewTextInputMode(types.ModeComment, "comment"),
		step:          step,
	}
}

func (m *CommentMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := m.handleCommon(msg); ok {
		return actions, true
	}

	switch msg.String() {
	case "esc":
		return []types.Action{
			types.CancelCommentAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "ctrl+s":
		if !ctx.CanSubmitComment() {
			return nil, true
		}
		return []types.Action{
			types.SubmitCommentAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	if !ctx.RatingFocused() {
		return nil, false
	}

	switch key := msg.String(); key {
	case "left", "h", "-":
		return []types.Action{types.AdjustRatingAction{Delta: -m.step}}, true
	case "right", "l", "+", "=":
		return []types.Action{types.AdjustRatingAction{Delta: m.step}}, true
	case "0", "1", "2", "3", "4", "5":
		v, _ := strconv.Atoi(key)
		return []types.Action{types.SetRatingAction{Value: float64(v)}}, true
	}
	// rating has focus: swallow everything else
	return nil, true
}
