package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homedrive-api/internal/application/ports"
	"homedrive-api/internal/infrastructure/jwt"
	"homedrive-api/internal/interface/api/rest/dto/scan"
	"homedrive-api/internal/interface/api/rest/middleware"
)

type ScanController struct {
	scanService ports.ScanService
	logger      *zap.Logger
}

func NewScanController(
	r *gin.Engine,
	scanService ports.ScanService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ScanController {
	sc := &ScanController{
		scanService: scanService,
		logger:      logger,
	}

	r.POST(RouteScan, middleware.AuthMiddleware(jwtService), sc.ScanFileHandler)

	return sc
}

// ScanFileHandler submits the uploaded file to the malware scanner and
// polls for a verdict. An incomplete verdict is still a 200: the scanner
// simply ran out of polling attempts, the caller decides what to do next.
func (sc *ScanController) ScanFileHandler(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fh.Size <= 0 || fh.Size > maxSize {
		c.JSON(
			http.StatusRequestEntityTooLarge,
			gin.H{"error": "file is empty or exceeds the size limit"},
		)
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		sc.logger.Error("FormFile Open() error", zap.Error(err))
		return
	}
	defer f.Close()

	result, err := sc.scanService.Scan(c.Request.Context(), fh.Filename, f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan file"})
		sc.logger.Error("Scan() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, scan.ToResponseResult(*result))
}
