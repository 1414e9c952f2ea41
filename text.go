package main

// Command help copy.
var (
	rootShort = "Serve a two-mode personal portfolio"

	rootLong = `folio renders a single-page portfolio in one of two presentation modes.
Art mode is handwritten and collage-like, Code mode looks like a terminal
and an editor. Switching mode restyles every section and never changes
the content shown.

Run without a subcommand to serve the site.`

	serveLong = `Serve the portfolio over HTTP.

Every fresh page load starts a new session in Art mode. The toggle in the
header switches that page between Art and Code; nothing is remembered
across loads. Images and stylesheets are served from FOLIO_ASSETS.`

	previewLong = `Preview the portfolio in the terminal.

tab switches mode, j/k select a project, enter shows the project's QR
code and q quits.`

	importLong = `Import a content YAML file into a SQLite database.

The database holds one snapshot; importing again replaces it. Without a
file argument the built-in content is imported.`

	checkLong = `Render the page in both modes and compare the facts each shows.

Exits non-zero when a title, tag, link or any other piece of content is
present in one mode and missing from the other.`
)
