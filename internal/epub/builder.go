// Package epub renders question banks into Rapid Memory EPUB books: one
// chapter per topic domain, each question followed directly by its correct
// answer.
package epub

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"os"
	"strings"
	"text/template"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/grcjp/testbank/pkg/types"
)

const mimetype = "application/epub+zip"

// Builder assembles EPUB archives. Given the same questions and title it
// produces a structurally identical book; only the generated identifier and
// timestamp differ between runs.
type Builder struct {
	creator  string
	language string
	iconPath string
}

// NewBuilder creates a builder with the given book metadata.
func NewBuilder(cfg types.BookConfig) *Builder {
	return &Builder{
		creator:  cfg.Creator,
		language: cfg.Language,
		iconPath: cfg.IconPath,
	}
}

// chapter is one per-domain content document.
type chapter struct {
	Domain    string
	FileName  string // e.g. "text/01-access-control.xhtml"
	ItemID    string // e.g. "domain01"
	Questions []questionView
}

// questionView is a question prepared for rendering.
type questionView struct {
	ID         string
	Paragraphs []string // escaped HTML, newlines already rendered as <br/>
	AnswerID   string
	AnswerText string
}

type navEntry struct {
	Order int
	Label string
	Href  string
}

type manifestItem struct {
	ID         string
	Href       string
	MediaType  string
	Properties string
}

// zipFile is one deflated archive entry.
type zipFile struct {
	name string
	data []byte
}

// Build renders the full EPUB archive into memory. The mimetype entry is
// stored uncompressed as the first entry, which readers require.
func (b *Builder) Build(questions []types.Question, title string) ([]byte, error) {
	bookID := uuid.New().String()
	date := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	chapters := groupByDomain(questions)

	entries := make([]navEntry, 0, len(chapters))
	manifest := []manifestItem{
		{ID: "nav", Href: "nav.xhtml", MediaType: "application/xhtml+xml", Properties: "nav"},
		{ID: "css", Href: "styles/style.css", MediaType: "text/css"},
		{ID: "title", Href: "text/title.xhtml", MediaType: "application/xhtml+xml"},
		{ID: "ncx", Href: "toc.ncx", MediaType: "application/x-dtbncx+xml"},
	}
	spine := []string{"title"}

	icon, err := b.loadIcon()
	if err != nil {
		return nil, err
	}
	if icon != nil {
		manifest = append(manifest, manifestItem{ID: "icon", Href: "pwa-icon.svg", MediaType: "image/svg+xml"})
	}

	for i, ch := range chapters {
		entries = append(entries, navEntry{Order: i + 1, Label: ch.Domain, Href: ch.FileName})
		manifest = append(manifest, manifestItem{ID: ch.ItemID, Href: ch.FileName, MediaType: "application/xhtml+xml"})
		spine = append(spine, ch.ItemID)
	}

	opf, err := render(opfTmpl, struct {
		BookID, Title, Language, Creator, Date string
		Manifest                               []manifestItem
		Spine                                  []string
	}{bookID, title, b.language, b.creator, date, manifest, spine})
	if err != nil {
		return nil, err
	}

	nav, err := render(navTmpl, struct{ Entries []navEntry }{entries})
	if err != nil {
		return nil, err
	}

	ncx, err := render(ncxTmpl, struct {
		BookID, Title string
		Entries       []navEntry
	}{bookID, title, entries})
	if err != nil {
		return nil, err
	}

	titlePage, err := render(titleTmpl, struct{ Title string }{title})
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	// Hard format requirement: an uncompressed mimetype entry first.
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, fmt.Errorf("failed to create mimetype entry: %w", err)
	}
	if _, err := w.Write([]byte(mimetype)); err != nil {
		return nil, fmt.Errorf("failed to write mimetype entry: %w", err)
	}

	files := []zipFile{
		{"META-INF/container.xml", []byte(containerXML)},
		{"OEBPS/content.opf", opf},
		{"OEBPS/toc.ncx", ncx},
		{"OEBPS/nav.xhtml", nav},
		{"OEBPS/styles/style.css", []byte(styleCSS)},
	}
	if icon != nil {
		files = append(files, zipFile{"OEBPS/pwa-icon.svg", icon})
	}
	files = append(files, zipFile{"OEBPS/text/title.xhtml", titlePage})

	for _, ch := range chapters {
		doc, err := render(chapterTmpl, ch)
		if err != nil {
			return nil, err
		}
		files = append(files, zipFile{"OEBPS/" + ch.FileName, doc})
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", f.name, err)
		}
		if _, err := w.Write(f.data); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// loadIcon reads the optional icon asset. A missing file is not an error.
func (b *Builder) loadIcon() ([]byte, error) {
	if b.iconPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(b.iconPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read icon: %w", err)
	}
	return data, nil
}

// groupByDomain buckets questions by domain in first-seen order, which fixes
// the chapter order in the table of contents and spine.
func groupByDomain(questions []types.Question) []*chapter {
	var chapters []*chapter
	index := make(map[string]*chapter)

	for _, q := range questions {
		domain := q.Domain
		if domain == "" {
			domain = types.DefaultDomain
		}

		ch, ok := index[domain]
		if !ok {
			n := len(chapters) + 1
			slug := slugify(domain)
			if slug == "" {
				slug = "domain"
			}
			ch = &chapter{
				Domain:   domain,
				FileName: fmt.Sprintf("text/%02d-%s.xhtml", n, slug),
				ItemID:   fmt.Sprintf("domain%02d", n),
			}
			index[domain] = ch
			chapters = append(chapters, ch)
		}
		ch.Questions = append(ch.Questions, newQuestionView(q))
	}
	return chapters
}

// newQuestionView escapes and lays out one question for its chapter document.
func newQuestionView(q types.Question) questionView {
	view := questionView{ID: q.ID}

	for _, part := range strings.Split(strings.TrimSpace(q.Question), "\n\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		escaped := html.EscapeString(part)
		view.Paragraphs = append(view.Paragraphs, strings.ReplaceAll(escaped, "\n", "<br/>"))
	}

	if c := q.CorrectChoice(); c != nil {
		view.AnswerID = c.ID
		view.AnswerText = c.Text
	}
	return view
}

// slugify lowercases the domain and replaces every non-alphanumeric rune
// with a dash, for stable chapter filenames.
func slugify(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('-')
		}
	}
	return strings.Trim(sb.String(), "-")
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}
