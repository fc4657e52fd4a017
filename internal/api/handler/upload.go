package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// maxUploadBytes bounds any single multipart file part.
const maxUploadBytes = 5 << 20

// formFile reads an optional multipart file part into memory. A missing part
// returns (nil, nil); an oversized part is a 400.
func formFile(c echo.Context, field string) (*ports.FileUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		// Echo returns a generic error when the request is not multipart at
		// all; treat that as "no file" so JSON bodies keep working.
		return nil, nil
	}

	if fh.Size > maxUploadBytes {
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+" exceeds the 5MB limit")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field+" upload")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable "+field+" upload")
	}
	if int64(len(data)) > maxUploadBytes {
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+" exceeds the 5MB limit")
	}

	return &ports.FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
