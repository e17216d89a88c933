// Package favicon assembles a complete website favicon package from a
// single color grid.
//
// [Build] renders every artifact concurrently and returns a [Bundle] whose
// entries are always in the same order:
//
//	favicon.ico                 16, 32 and 48 px PNG images
//	favicon-16x16.png
//	favicon-32x32.png
//	android-chrome-192x192.png
//	android-chrome-512x512.png
//	favicon.svg
//	site.webmanifest
//	browserconfig.xml
//	README.txt
//
// A failing artifact does not abort its siblings; the failure is recorded
// on its entry and reported by [Bundle.Err]. [Bundle.Zip] writes the
// archive and refuses while any entry has failed. Identical inputs produce
// byte-identical archives.
package favicon
