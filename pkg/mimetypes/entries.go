package mimetypes

// entries is the authoritative extension→MIME table. Order matters: when several
// extensions share a MIME type, the first one listed becomes the representative
// extension returned by ExtensionByType.
var entries = []Entry{
	// Text
	{"txt", "text/plain"},
	{"html", "text/html"},
	{"htm", "text/html"},
	{"css", "text/css"},
	{"csv", "text/csv"},
	{"md", "text/markdown"},
	{"ics", "text/calendar"},
	{"js", "text/javascript"},
	{"mjs", "text/javascript"},

	// Images
	{"png", "image/png"},
	{"jpg", "image/jpeg"},
	{"jpeg", "image/jpeg"},
	{"gif", "image/gif"},
	{"svg", "image/svg+xml"},
	{"webp", "image/webp"},
	{"avif", "image/avif"},
	{"bmp", "image/bmp"},
	{"ico", "image/vnd.microsoft.icon"},
	{"tif", "image/tiff"},
	{"tiff", "image/tiff"},

	// Audio
	{"mp3", "audio/mpeg"},
	{"wav", "audio/wav"},
	{"ogg", "audio/ogg"},
	{"oga", "audio/ogg"},
	{"opus", "audio/opus"},
	{"aac", "audio/aac"},
	{"weba", "audio/webm"},
	{"mid", "audio/midi"},
	{"midi", "audio/midi"},

	// Video
	{"mp4", "video/mp4"},
	{"mpeg", "video/mpeg"},
	{"mpg", "video/mpeg"},
	{"webm", "video/webm"},
	{"ogv", "video/ogg"},
	{"avi", "video/x-msvideo"},
	{"mov", "video/quicktime"},
	{"ts", "video/mp2t"},

	// Fonts
	{"woff", "font/woff"},
	{"woff2", "font/woff2"},
	{"ttf", "font/ttf"},
	{"otf", "font/otf"},
	{"eot", "application/vnd.ms-fontobject"},

	// Archives
	{"zip", "application/zip"},
	{"gz", "application/gzip"},
	{"tar", "application/x-tar"},
	{"rar", "application/vnd.rar"},
	{"7z", "application/x-7z-compressed"},
	{"bz", "application/x-bzip"},
	{"bz2", "application/x-bzip2"},

	// Documents
	{"pdf", "application/pdf"},
	{"doc", "application/msword"},
	{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{"xls", "application/vnd.ms-excel"},
	{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	{"ppt", "application/vnd.ms-powerpoint"},
	{"pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	{"odt", "application/vnd.oasis.opendocument.text"},
	{"ods", "application/vnd.oasis.opendocument.spreadsheet"},
	{"odp", "application/vnd.oasis.opendocument.presentation"},
	{"rtf", "application/rtf"},
	{"epub", "application/epub+zip"},
	{"abw", "application/x-abiword"},

	// Data & misc
	{"json", "application/json"},
	{"jsonld", "application/ld+json"},
	{"xml", "application/xml"},
	{"xhtml", "application/xhtml+xml"},
	{"yaml", "application/yaml"},
	{"yml", "application/yaml"},
	{"toml", "application/toml"},
	{"sql", "application/sql"},
	{"sh", "application/x-sh"},
	{"wasm", "application/wasm"},
	{"bin", "application/octet-stream"},
	{"jar", "application/java-archive"},
	{"ogx", "application/ogg"},
}
