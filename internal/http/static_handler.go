package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaticHandler sirve la pagina de entrada y los assets del front end desde disco.
type StaticHandler struct {
	logger *zap.Logger
	dir    string
	index  string
}

func NewStaticHandler(logger *zap.Logger, dir, index string) *StaticHandler {
	return &StaticHandler{
		logger: logger,
		dir:    dir,
		index:  index,
	}
}

// Index maneja GET /.
func (h *StaticHandler) Index(c *gin.Context) {
	file := filepath.Join(h.dir, h.index)
	if !isRegularFile(file) {
		h.logger.Error("static index not found", zap.String("file", file))
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.File(file)
}

// Asset sirve cualquier otro archivo existente dentro del directorio estatico.
func (h *StaticHandler) Asset(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	file := resolveAsset(h.dir, c.Request.URL.Path)
	if file == "" || !isRegularFile(file) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.File(file)
}

// resolveAsset mapea un path de URL a un archivo dentro de dir; nunca sale de dir.
func resolveAsset(dir, urlPath string) string {
	cleaned := path.Clean("/" + urlPath)
	if cleaned == "/" {
		return ""
	}
	return filepath.Join(dir, filepath.FromSlash(cleaned))
}

func isRegularFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
