// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"os"

	"casedesk-server/storage"

	"github.com/labstack/echo/v4"
)

// ServeUploadHandler streams a stored upload (profile photo or evidence
// file) by its handle. Handles are opaque keys, anything that looks like a
// path is rejected.
func ServeUploadHandler(c echo.Context) error {
	handle := c.Param("*")

	absPath, err := storage.Resolve(handle)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file name")
	}

	fileInfo, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound, "File not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to access file")
	}

	if fileInfo.IsDir() {
		return echo.NewHTTPError(http.StatusForbidden, "Directory listing not allowed")
	}

	c.Response().Header().Set("X-Content-Type-Options", "nosniff")
	c.Response().Header().Set("X-Frame-Options", "DENY")
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.File(absPath)
}
