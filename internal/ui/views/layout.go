package views

// Screen geometry shared by the renderer and the mouse hit-testing of the
// model. The main container pads by one row and two columns and the header
// takes two rows.
const (
	PadX         = 2
	PadY         = 1
	HeaderHeight = 2

	CardWidth        = 36
	CardSliderHeight = 9
	CardGap          = 2
	// CardHeight is border, slider, name, rating and price lines
	CardHeight = 2 + CardSliderHeight + 3

	DetailSliderMaxWidth = 72
	DetailSliderHeight   = 14
)

// BodyOrigin returns the screen cell where page content starts
func BodyOrigin() (x, y int) {
	return PadX, PadY + HeaderHeight
}

// CardsPerRow returns how many product cards fit in width
func CardsPerRow(width int) int {
	avail := width - 2*PadX
	return max(1, (avail+CardGap)/(CardWidth+CardGap))
}

// VisibleCardRows returns how many card rows fit in height, help line
// included.
func VisibleCardRows(height int) int {
	avail := height - 2*PadY - HeaderHeight - 2
	return max(1, avail/CardHeight)
}

// CardOrigin returns the top-left screen cell of card i given the first
// visible row.
func CardOrigin(i, perRow, firstRow int) (x, y int) {
	bx, by := BodyOrigin()
	row, col := i/perRow-firstRow, i%perRow
	return bx + col*(CardWidth+CardGap), by + row*CardHeight
}

// DetailSliderWidth returns the carousel width of the product page
func DetailSliderWidth(width int) int {
	return max(20, min(DetailSliderMaxWidth, width-2*PadX))
}
