package domain

import "strings"

// ViewerURL resolves the embedded-viewer URL for a post's type and
// resource ID. Unknown types return "" which means a blank viewer.
func ViewerURL(t PostType, id string) string {
	switch PostType(strings.ToLower(string(t))) {
	case TypeDocs:
		return "https://docs.google.com/document/d/" + id + "/preview"
	case TypeSlide:
		return "https://docs.google.com/presentation/d/" + id + "/embed?start=false&loop=false&delayms=3000"
	case TypeImage, TypePDF:
		return "https://drive.google.com/file/d/" + id + "/preview"
	case TypeSpreadsheet:
		return "https://docs.google.com/spreadsheets/d/" + id + "/htmlembed"
	case TypeHTML:
		// Local static pages served next to the site.
		return "/contents/html/" + id
	case TypeFolder:
		return "https://drive.google.com/embeddedfolderview?id=" + id + "#grid"
	default:
		return ""
	}
}
