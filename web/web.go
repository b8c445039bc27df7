// Package web contiene la interfaz de una sola página del sistema de
// reservas, embebida en el binario y servida por el propio servidor.
package web

import "embed"

//go:embed index.html app.js styles.css
var FS embed.FS
