// Package icons maps layer icon identifiers to Lucide glyphs.
//
// The network catalog names an icon per layer without dictating
// presentation; this package owns the sprite the web surface renders.
package icons
