// Package captions fetches caption and transcript assets for a selected
// stream from the host's get_captions handler and turns the author's picks
// into the value of the block's captions field.
//
// Host-provided strings (error messages, file names) are sanitised with a
// strict bluemonday policy before they are returned, since renderers place
// them into markup.
package captions
