package web

import (
	"html/template"

	"github.com/ziadkadry99/layermap/internal/navigation"
)

var icons = map[navigation.Icon]template.HTML{
	navigation.IconGlobe:  `<svg viewBox="0 0 24 24" width="20" height="20" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="10"/><path d="M2 12h20M12 2a15 15 0 0 1 0 20a15 15 0 0 1 0-20"/></svg>`,
	navigation.IconServer: `<svg viewBox="0 0 24 24" width="20" height="20" fill="none" stroke="currentColor" stroke-width="2"><rect x="2" y="2" width="20" height="8" rx="2"/><rect x="2" y="14" width="20" height="8" rx="2"/><path d="M6 6h.01M6 18h.01"/></svg>`,
}

const layersIcon = `<svg viewBox="0 0 24 24" width="32" height="32" fill="none" stroke="#4f46e5" stroke-width="2"><path d="m12 2 10 5-10 5L2 7z"/><path d="m2 17 10 5 10-5"/><path d="m2 12 10 5 10-5"/></svg>`

var funcs = template.FuncMap{
	"icon": func(i navigation.Icon) template.HTML { return icons[i] },
	"layersIcon": func() template.HTML {
		return layersIcon
	},
}

const styles = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",sans-serif;background:#f9fafb;color:#111827}
a{color:inherit;text-decoration:none}
.app{display:flex;min-height:100vh}
#sidebar{width:320px;flex-shrink:0;background:#fff;border-right:1px solid #e5e7eb;display:flex;flex-direction:column;position:sticky;top:0;height:100vh}
.brand{display:flex;align-items:center;gap:12px;padding:24px;border-bottom:1px solid #e5e7eb}
.brand h1{margin:0;font-size:20px}
.brand p{margin:0;font-size:14px;color:#4b5563}
.menu{flex:1;overflow-y:auto;padding:16px}
.group{margin-bottom:24px}
.group h2{display:flex;align-items:center;gap:8px;margin:0 0 12px;font-size:13px;text-transform:uppercase;letter-spacing:.05em}
.group h2 span{color:#111827}
.item{display:flex;align-items:center;justify-content:space-between;margin-left:28px;padding:8px 12px;border-radius:6px;font-size:14px;color:#374151}
.item:hover{background:#f3f4f6}
.item.active{background:#eef2ff;color:#4338ca;border-left:4px solid #6366f1}
.dot{display:inline-block;width:8px;height:8px;border-radius:50%;margin-right:8px}
.chevron{color:#9ca3af}
.item.active .chevron{color:#4f46e5;transform:rotate(90deg)}
.foot{padding:16px;border-top:1px solid #e5e7eb;font-size:12px;color:#6b7280;text-align:center}
.foot p{margin:0}
main{flex:1;min-width:0;display:flex;flex-direction:column}
#header{background:#fff;border-bottom:1px solid #e5e7eb;padding:24px 32px;display:flex;align-items:center;justify-content:space-between;gap:16px}
.headline{display:flex;align-items:center;gap:16px}
.headline h1{margin:0;font-size:24px}
.headline p{margin:4px 0 0;color:#4b5563}
.current{text-align:right}
.current small{display:block;font-size:13px;color:#6b7280}
.current strong{font-size:18px}
.actions{display:flex;align-items:center;gap:16px}
.btn{display:inline-flex;align-items:center;gap:8px;background:#4f46e5;color:#fff;padding:8px 16px;border-radius:8px;font-size:14px;font-weight:500}
.btn:hover{background:#4338ca}
.nav-toggle{display:none;font-size:22px;padding:4px 10px;border:1px solid #e5e7eb;border-radius:6px}
.content{padding:32px}
#diagram{background:#fff;border:1px solid #e5e7eb;border-radius:12px;padding:24px;margin-bottom:32px}
#diagram svg{width:100%;height:auto;display:block}
#diagram .node{cursor:pointer}
.panel{max-width:896px;margin:0 auto}
.panel-head{border:1px solid;border-radius:12px;padding:24px;margin-bottom:32px}
.panel-head h1{display:flex;align-items:center;gap:12px;margin:0 0 12px;font-size:30px}
.badge{display:inline-block;font-size:12px;font-weight:600;letter-spacing:.05em;padding:2px 8px;border-radius:9999px;border:1px solid}
.card{background:#fff;border:1px solid #e5e7eb;border-radius:12px;padding:24px;margin-bottom:24px;box-shadow:0 1px 2px rgba(0,0,0,.05)}
.card h3{margin:0 0 16px;font-size:16px}
.grid{display:grid;grid-template-columns:3fr 2fr;gap:24px}
.practices li{margin-bottom:8px;font-size:14px;color:#374151}
.code pre{margin:0;padding:16px;border-radius:8px;overflow-x:auto;font-size:14px;background:#111827;color:#f3f4f6}
.fun{background:linear-gradient(to right,#f9fafb,#f3f4f6);border:1px solid #e5e7eb;border-radius:12px;padding:24px;text-align:center}
.fun img{max-width:384px;width:100%;border-radius:8px;border:1px solid #d1d5db}
.missing{padding:64px;text-align:center;color:#6b7280;font-size:20px}
.overlay{display:none}
@media (max-width:1024px){
  #sidebar{position:fixed;left:0;top:0;z-index:20;transform:translateX(-100%);transition:transform .2s}
  .nav-open #sidebar{transform:none}
  .nav-open .overlay{display:block;position:fixed;inset:0;background:rgba(0,0,0,.4);z-index:10}
  .nav-toggle{display:inline-block}
  .headline p,.current{display:none}
  .grid{grid-template-columns:1fr}
  .content{padding:16px}
}
.qr{min-height:100vh;display:flex;flex-direction:column;background:linear-gradient(135deg,#eef2ff,#fff,#ecfeff)}
.qr header{background:#fff;border-bottom:1px solid #e5e7eb;padding:16px 32px;display:flex;justify-content:space-between;align-items:center}
.qr main{flex:1;display:flex;align-items:center;justify-content:center;padding:48px 32px}
.qr .inner{max-width:672px;text-align:center}
.qr h1{font-size:44px;margin:0 0 16px}
.qr .lead{font-size:20px;color:#4b5563;margin:0 0 8px}
.qr .code{background:#fff;border-radius:16px;box-shadow:0 25px 50px -12px rgba(0,0,0,.25);padding:40px;margin:48px 0 32px}
.qr .code img{width:288px;height:288px}
.qr .url{font-family:ui-monospace,monospace;color:#4f46e5;background:#f9fafb;border-radius:8px;padding:12px;margin-top:24px}
.steps{display:grid;grid-template-columns:repeat(3,1fr);gap:24px;text-align:center}
.step b{display:inline-flex;align-items:center;justify-content:center;width:48px;height:48px;border-radius:50%;background:#e0e7ff;color:#4f46e5;font-size:20px}
.step p{font-size:14px;color:#4b5563}
.qr footer{background:#f9fafb;border-top:1px solid #e5e7eb;padding:24px;text-align:center;color:#4b5563}
`

const pageTemplates = `
{{define "logo"}}{{if .LogoSrc}}<img src="{{.LogoSrc}}" alt="LayerMap Logo" width="40" height="40">{{else}}{{layersIcon}}{{end}}{{end}}

{{define "sidebar"}}
<div class="brand">{{layersIcon}}<div><h1>LayerMap</h1><p>Arquitectura de Software</p></div></div>
<nav class="menu">
{{range .Groups}}
  <div class="group">
    <h2 style="color:{{.Style.Accent}}">{{icon .Icon}}<span>{{.Label}}</span></h2>
    {{range .Items}}
    <a class="item{{if .Active}} active{{end}}" href="{{.Href}}" data-intent="{{.Intent.Kind}}" data-id="{{.Intent.ID}}" data-source="{{.Intent.Source}}">
      <span><span class="dot" style="background:{{.Style.Accent}}"></span>{{.Title}}</span>
      <span class="chevron">&rsaquo;</span>
    </a>
    {{end}}
  </div>
{{end}}
</nav>
<div class="foot"><p>Desarrollado para aprender</p><p>arquitectura de software</p></div>
{{end}}

{{define "header"}}
<div class="headline">
  <a class="nav-toggle" href="{{.ToggleHref}}" data-intent="toggle_nav" aria-label="Menú">&#9776;</a>
  {{template "logo" .}}
  <div>
    <h1>LayerMap - Visualiza tu arquitectura de software</h1>
    <p>Guía interactiva para entender las capas de arquitectura backend y frontend</p>
  </div>
</div>
<div class="actions">
  <div class="current"><small>Sección actual</small><strong>{{.Panel.Title}}</strong></div>
  <a class="btn" href="{{.QRHref}}">Ver QR</a>
</div>
{{end}}

{{define "diagram"}}{{.Diagram}}{{end}}

{{define "detail"}}
{{with .Panel}}
{{if .Found}}
<div class="panel">
  <div class="panel-head" style="background:{{.Style.Background}};border-color:{{.Style.Border}}">
    <h1><span class="dot" style="width:16px;height:16px;background:{{.Style.Accent}}"></span>{{.Title}}</h1>
    <span class="badge" style="color:{{.Style.Text}};border-color:{{.Style.Border}}">{{.CategoryLabel}}</span>
    <p>{{.Description}}</p>
  </div>
  <div class="grid">
    <div class="card"><h3>Responsabilidades</h3><p>{{.Responsibility}}</p></div>
    <div class="card practices"><h3>Principios Clave</h3><ul>{{range .Practices}}<li>{{.}}</li>{{end}}</ul></div>
  </div>
  <div class="card code"><h3>Ejemplo de Código <span class="badge">{{.Language}}</span></h3>{{$.Code}}</div>
  <div class="fun">
    <h3>{{.Illustration.Title}}</h3>
    <p>{{.Illustration.Subtitle}}</p>
    <img src="{{$.ImageSrc}}" alt="{{.Illustration.Alt}}">
  </div>
</div>
{{else}}
<div class="missing">{{.Title}}</div>
{{end}}
{{end}}
{{end}}

{{define "main"}}<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>LayerMap - {{.Panel.Title}}</title>
<style>{{.Styles}}</style>
</head>
<body class="{{if .State.NavOpen}}nav-open{{end}}" data-active="{{.State.ActiveID}}" data-nav="{{.State.NavOpen}}">
<div class="app">
  <aside id="sidebar">{{template "sidebar" .}}</aside>
  <a class="overlay" href="{{.CloseHref}}" data-intent="close_nav" aria-label="Cerrar menú"></a>
  <main>
    <header id="header">{{template "header" .}}</header>
    <div class="content">
      <section id="diagram">{{template "diagram" .}}</section>
      <section id="detail">{{template "detail" .}}</section>
    </div>
  </main>
</div>
{{if .Live}}<script>{{.Script}}</script>{{end}}
</body>
</html>
{{end}}

{{define "qr"}}<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>LayerMap - Código QR</title>
<style>{{.Styles}}</style>
</head>
<body>
<div class="qr">
  <header>
    <a href="{{.BackHref}}">&larr; Volver a LayerMap</a>
    <span>{{template "logo" .}} <strong>LayerMap</strong></span>
  </header>
  <main><div class="inner">
    <h1>¡Accede desde tu móvil!</h1>
    <p class="lead">Escanea el código QR para acceder a LayerMap</p>
    <p>desde cualquier dispositivo</p>
    <div class="code">
      <img src="{{.QRSrc}}" alt="Código QR para acceder a LayerMap - {{.PublicURL}}">
      <div class="url"><small>URL del sitio web:</small><br>{{.PublicURL}}</div>
    </div>
    <div class="card">
      <h2>¿Cómo usar el código QR?</h2>
      <div class="steps">
        <div class="step"><b>1</b><h3>Abre la cámara</h3><p>Usa la app de cámara de tu teléfono o cualquier lector de códigos QR</p></div>
        <div class="step"><b>2</b><h3>Escanea el código</h3><p>Apunta la cámara hacia el código QR hasta que lo detecte</p></div>
        <div class="step"><b>3</b><h3>¡Accede!</h3><p>Toca la notificación para abrir LayerMap en tu navegador móvil</p></div>
      </div>
    </div>
    <p>¿Prefieres copiar el enlace?</p>
    <a class="btn" href="{{.PublicURL}}" target="_blank" rel="noopener noreferrer">Abrir LayerMap</a>
  </div></main>
  <footer>LayerMap - Visualiza tu arquitectura de software de manera interactiva</footer>
</div>
</body>
</html>
{{end}}
`

// liveScript upgrades intent links to websocket messages. Without a live
// connection the links are followed as normal navigation.
const liveScript = `
(function () {
  var data = document.body.dataset;
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws?active=" +
    encodeURIComponent(data.active) + "&nav=" + (data.nav === "true" ? "1" : "0"));
  var ready = false;
  ws.onopen = function () { ready = true; };
  ws.onclose = function () { ready = false; };
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type !== "state") return;
    ["sidebar", "header", "diagram", "detail"].forEach(function (k) {
      var el = document.getElementById(k);
      if (el && msg.fragments && msg.fragments[k] !== undefined) el.innerHTML = msg.fragments[k];
    });
    document.body.classList.toggle("nav-open", msg.state.nav_open);
    data.active = msg.state.active_id;
    data.nav = String(msg.state.nav_open);
    document.title = msg.title;
    history.replaceState(null, "", "/?section=" + encodeURIComponent(msg.state.active_id));
  };
  document.addEventListener("click", function (e) {
    if (!ready) return;
    var el = e.target.closest("[data-intent]");
    if (!el) return;
    e.preventDefault();
    ws.send(JSON.stringify({type: el.dataset.intent, id: el.dataset.id || "", source: el.dataset.source || ""}));
  });
})();
`
