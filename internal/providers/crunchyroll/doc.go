// Package crunchyroll reads watch-history cards from the Crunchyroll
// /history page. The page can come from a live HTTP fetch or from an HTML
// snapshot saved while scrolling the feed in a browser.
package crunchyroll
