package epub

import (
	"html"
	"text/template"
)

// The EPUB scaffold is small and fixed, so the documents are plain
// text/template renders with explicit escaping. Question paragraphs are
// escaped before templating because they carry <br/> tags of their own.

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

const styleCSS = `body { font-family: serif; line-height: 1.5; }
h1, h2, h3 { font-family: sans-serif; }
h1 { font-size: 1.6em; margin: 0 0 0.8em 0; }
h2 { font-size: 1.2em; margin: 1.2em 0 0.5em 0; }
.domain { font-size: 0.9em; color: #555; margin: 0 0 0.3em 0; }
.qa { margin: 0 0 1.2em 0; }
.answer { margin-top: 0.3em; }
.answer b { font-family: sans-serif; }
hr { border: none; border-top: 1px solid #ccc; margin: 1.2em 0; }
`

var funcs = template.FuncMap{
	"esc": html.EscapeString,
}

var titleTmpl = template.Must(template.New("title").Funcs(funcs).Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en">
<head>
  <title>{{esc .Title}}</title>
  <link rel="stylesheet" type="text/css" href="../styles/style.css"/>
</head>
<body>
  <h1>{{esc .Title}}</h1>
  <p><b>Rapid Memory Mode:</b> Question &#8594; Answer</p>
  <p>This book was generated from the CMMC CCP Test Bank JSON.</p>
</body>
</html>
`))

var chapterTmpl = template.Must(template.New("chapter").Funcs(funcs).Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en">
<head>
  <title>{{esc .Domain}}</title>
  <link rel="stylesheet" type="text/css" href="../styles/style.css"/>
</head>
<body>
  <p class="domain">{{esc .Domain}}</p>
  <h1>{{esc .Domain}}</h1>
{{- range .Questions}}
  <div class="qa">
    <h2 id="{{esc .ID}}">{{esc .ID}}</h2>
{{- range .Paragraphs}}
    <p>{{.}}</p>
{{- end}}
    <p class="answer"><b>Answer:</b> {{esc .AnswerID}}{{if .AnswerText}}: {{esc .AnswerText}}{{end}}</p>
    <hr/>
  </div>
{{- end}}
</body>
</html>
`))

var navTmpl = template.Must(template.New("nav").Funcs(funcs).Parse(`<?xml version="1.0" encoding="utf-8"?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops" xml:lang="en">
<head>
  <title>Table of Contents</title>
  <link rel="stylesheet" type="text/css" href="styles/style.css"/>
</head>
<body>
  <nav epub:type="toc" id="toc">
    <h1>Contents</h1>
    <ol>
{{- range .Entries}}
      <li><a href="{{esc .Href}}">{{esc .Label}}</a></li>
{{- end}}
    </ol>
  </nav>
</body>
</html>
`))

var ncxTmpl = template.Must(template.New("ncx").Funcs(funcs).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE ncx PUBLIC "-//NISO//DTD ncx 2005-1//EN" "http://www.daisy.org/z3986/2005/ncx-2005-1.dtd">
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
  <head>
    <meta name="dtb:uid" content="{{.BookID}}"/>
  </head>
  <docTitle><text>{{esc .Title}}</text></docTitle>
  <navMap>
{{- range .Entries}}
    <navPoint id="navPoint-{{.Order}}" playOrder="{{.Order}}">
      <navLabel><text>{{esc .Label}}</text></navLabel>
      <content src="{{esc .Href}}"/>
    </navPoint>
{{- end}}
  </navMap>
</ncx>
`))

var opfTmpl = template.Must(template.New("opf").Funcs(funcs).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" unique-identifier="bookid" version="3.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:identifier id="bookid">urn:uuid:{{.BookID}}</dc:identifier>
    <dc:title>{{esc .Title}}</dc:title>
    <dc:language>{{esc .Language}}</dc:language>
    <dc:creator>{{esc .Creator}}</dc:creator>
    <dc:date>{{.Date}}</dc:date>
  </metadata>
  <manifest>
{{- range .Manifest}}
    <item id="{{.ID}}" href="{{esc .Href}}" media-type="{{.MediaType}}"{{if .Properties}} properties="{{.Properties}}"{{end}}/>
{{- end}}
  </manifest>
  <spine toc="ncx">
{{- range .Spine}}
    <itemref idref="{{.}}"/>
{{- end}}
  </spine>
</package>
`))
