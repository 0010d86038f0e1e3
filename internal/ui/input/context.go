package input

import "shopfront/internal/ui/input/types"

// ModelContext is the snapshot of model state handed to the input modes
type ModelContext struct {
	CurrentPage  types.Page
	Index        int
	Total        int
	Tab          string
	Slider       bool
	Rating       bool
	CommentReady bool
}

func (c ModelContext) Page() types.Page       { return c.CurrentPage }
func (c ModelContext) CurrentIndex() int      { return c.Index }
func (c ModelContext) TotalItems() int        { return c.Total }
func (c ModelContext) ActiveTab() string      { return c.Tab }
func (c ModelContext) SliderFocused() bool    { return c.Slider }
func (c ModelContext) RatingFocused() bool    { return c.Rating }
func (c ModelContext) CanSubmitComment() bool { return c.CommentReady }
