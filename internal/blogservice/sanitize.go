package blogservice

import "regexp"

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

func sanitizeArticle(article string) string {
	return scriptTagPattern.ReplaceAllString(article, "")
}
