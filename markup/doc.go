// Package markup scans the inline style markup used by emotext.
//
// The grammar is a flat stream of toggles, not a tree:
//
//	*x*     x in italic
//	**x**   x in bold
//	~x~     x with wave animation
//	~~x~~   x with strike-through
//	__x__   x with underline
//	\n      line break
//
// Every marker flips its flag when it is seen. There is no escape syntax and
// no nesting stack, so an unmatched marker leaves its style active until the
// end of the input. A single underscore is an ordinary character.
//
// # Scanning
//
// A Scanner walks a UTF-8 string and yields one Event per step:
//
//	sc := markup.NewScanner("**bold** and *italic*")
//	var st markup.Style
//	for ev, ok := sc.Next(); ok; ev, ok = sc.Next() {
//	    if st.Apply(ev) {
//	        continue // marker consumed
//	    }
//	    // ev.Rune is drawn with st.Variant()
//	}
//
// Invalid byte sequences decode to Replacement and consume exactly one byte,
// so a Scanner always terminates.
package markup
