package scraper

import (
	"regexp"
	"strings"
)

var (
	metaTagPattern  = regexp.MustCompile(`(?is)<meta\b[^>]*>`)
	linkTagPattern  = regexp.MustCompile(`(?is)<link\b[^>]*>`)
	titleTagPattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
)

// collectMetaTags runs one pass over every <meta> tag in the document and
// routes recognized properties into the extraction context. Tags the
// tokenizer cannot make sense of contribute nothing and are skipped.
func collectMetaTags(e *extraction, html string) {
	for _, tag := range metaTagPattern.FindAllString(html, -1) {
		attrs := parseTagAttrs(tag)
		if attrs == nil {
			continue
		}

		content := attrs["content"]
		property := strings.ToLower(attrs["property"])
		name := strings.ToLower(attrs["name"])
		itemprop := strings.ToLower(attrs["itemprop"])
		if content == "" {
			continue
		}

		switch {
		case property == "og:title" || name == "twitter:title" || itemprop == "name" || name == "title":
			e.addTitle(content)
		case property == "og:description" || name == "description" || name == "twitter:description" ||
			itemprop == "description" || property == "product:description":
			e.addDescription(content)
		case property == "og:image" || property == "og:image:url" || name == "twitter:image" ||
			itemprop == "image" || itemprop == "thumbnailurl":
			e.addThumbnail(content)
		case name == "keywords" || itemprop == "keywords":
			e.addTagList(content)
		case property == "og:video" || property == "og:video:url" || property == "og:video:secure_url":
			e.sources.add(content, "", "OpenGraph video")
		case property == "og:video:duration" || property == "video:duration" || name == "duration":
			e.addDuration(content)
		case name == "twitter:player:stream" || name == "twitter:player:stream:src":
			e.sources.add(content, "", "Twitter video")
		case strings.HasSuffix(property, ":tag") || strings.HasSuffix(name, ":tag"):
			e.addTag(content)
		}
	}
}

// collectCanonicalLink finds the first <link rel="canonical"> and stops.
func collectCanonicalLink(e *extraction, html string) {
	for _, tag := range linkTagPattern.FindAllString(html, -1) {
		attrs := parseTagAttrs(tag)
		if attrs == nil {
			continue
		}
		if strings.ToLower(attrs["rel"]) != "canonical" {
			continue
		}
		if href := attrs["href"]; href != "" {
			e.setCanonical(href)
			return
		}
	}
}

// collectTitleTag adds the decoded <title> text as a title candidate.
// It runs after collectMetaTags, so it only wins when no meta tag
// supplied a title.
func collectTitleTag(e *extraction, html string) {
	m := titleTagPattern.FindStringSubmatch(html)
	if m == nil {
		return
	}
	e.addTitle(decodeEntities(m[1]))
}
