package server

import "net/http"

// indexPage is a minimal swatch page wired to the live-reload channel.
// It references the generated custom properties by name, so it doubles
// as a smoke test of the variable naming contract.
const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>seedtheme preview</title>
<link rel="stylesheet" href="/theme.css">
<style>
body { font-family: sans-serif; background: var(--color-light-surface); color: var(--color-light-on-surface); margin: 2rem; }
.swatch { display: inline-block; width: 9rem; padding: 1rem; margin: 0.25rem; border-radius: 0.5rem; }
.primary { background: var(--color-light-primary); color: var(--color-light-on-primary); }
.secondary { background: var(--color-light-secondary); color: var(--color-light-on-secondary); }
.tertiary { background: var(--color-light-tertiary); color: var(--color-light-on-tertiary); }
.error { background: var(--color-light-error); color: var(--color-light-on-error); }
a { color: var(--color-light-link); }
</style>
</head>
<body>
<h1>seedtheme</h1>
<div class="swatch primary">primary</div>
<div class="swatch secondary">secondary</div>
<div class="swatch tertiary">tertiary</div>
<div class="swatch error">error</div>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = () => {
  const link = document.querySelector("link[rel=stylesheet]");
  link.href = "/theme.css?t=" + Date.now();
};
</script>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexPage))
}
