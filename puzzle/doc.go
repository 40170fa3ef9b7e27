// Package puzzle turns an image into a jigsaw and tracks the pieces while
// they are dragged onto the board.
//
// Pieces are laid out on a Cols×Rows grid. Piece (i, j) sits in column i and
// row j; its correct tile is "tile_i_j". A dropped piece snaps into its tile
// when its top-left corner lands within Tolerance of a piece size from the
// tile's corner, boundaries included.
package puzzle
