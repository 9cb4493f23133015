// Package feed builds the Atom feed of recently posted memes.
package feed

import (
	"fmt"
	"time"

	"github.com/beevik/etree"

	"github.com/Sreejan-22/Memes4u/internal/models"
)

const atomNS = "http://www.w3.org/2005/Atom"

// Atom renders memes (expected newest first) as an Atom feed document.
// baseURL is the externally visible address of this site.
func Atom(memes []models.Meme, baseURL string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	feed := doc.CreateElement("feed")
	feed.CreateAttr("xmlns", atomNS)
	feed.CreateElement("title").SetText("Memes4u")
	feed.CreateElement("id").SetText(baseURL + "/memes")

	link := feed.CreateElement("link")
	link.CreateAttr("href", baseURL+"/memes")

	updated := time.Now()
	if len(memes) > 0 {
		updated = memes[0].CreatedAt
	}
	feed.CreateElement("updated").SetText(updated.Format(time.RFC3339))

	for _, m := range memes {
		entry := feed.CreateElement("entry")
		entry.CreateElement("id").SetText(fmt.Sprintf("%s/memes/%s", baseURL, m.ID))
		entry.CreateElement("title").SetText(m.Caption)
		entry.CreateElement("updated").SetText(m.CreatedAt.Format(time.RFC3339))

		author := entry.CreateElement("author")
		author.CreateElement("name").SetText(m.Name)
		author.CreateElement("uri").SetText(fmt.Sprintf("%s/mymemes/%s", baseURL, m.Username))

		entryLink := entry.CreateElement("link")
		entryLink.CreateAttr("href", m.URL)

		content := entry.CreateElement("content")
		content.CreateAttr("type", "text")
		content.SetText(m.Caption)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize feed: %w", err)
	}
	return out, nil
}
