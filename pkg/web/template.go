package web

import "html/template"

// pageData はページテンプレートに渡す値です。
type pageData struct {
	Prompt       string
	PreviewURI   template.URL
	ShowResponse bool
	Answer       string
	Messages     []message
	Accept       string
}

type message struct {
	Level string
	Text  string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Invoice Extractor</title>
<style>
body { font-family: sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; }
.msg { padding: .75rem 1rem; border-radius: .25rem; margin: 1rem 0; }
.msg.info { background: #e8f1fb; color: #0b4f8a; }
.msg.error { background: #fdecea; color: #8a1c0b; }
figure img { max-width: 100%; }
pre { white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Invoice Extractor</h1>
<h2>Gemini Invoice Analyzer</h2>
<form method="post" action="/analyze" enctype="multipart/form-data">
  <p><label>Enter text prompt:<br><input type="text" name="prompt" size="60" value="{{.Prompt}}"></label></p>
  <p><label>Upload an image file<br><input type="file" name="image" accept="{{.Accept}}"></label></p>
  <p><button type="submit">Analyze Invoice</button></p>
</form>
{{range .Messages}}<div class="msg {{.Level}}" data-level="{{.Level}}">{{.Text}}</div>
{{end}}{{if .PreviewURI}}<figure><img src="{{.PreviewURI}}" alt="Uploaded Image"><figcaption>Uploaded Image</figcaption></figure>
{{end}}{{if .ShowResponse}}<h3>Response:</h3>
<pre id="answer">{{.Answer}}</pre>
{{end}}</body>
</html>
`))
