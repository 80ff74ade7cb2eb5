package server

import (
	"bytes"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/dotnotation"
	"github.com/npillmayer/braille/internal/errs"
	"github.com/npillmayer/braille/render"
)

type toBrailleRequest struct {
	Text string `json:"text"`
}

type toBrailleResponse struct {
	OriginalText      string         `json:"original_text"`
	BrailleCells      []braille.Cell `json:"braille_cells"`
	BrailleStringRepr string         `json:"braille_string_repr"`
	BrailleUnicode    string         `json:"braille_unicode"`
}

type toTextRequest struct {
	BrailleCells [][]int `json:"braille_cells"`
}

type toTextResponse struct {
	TranslatedText string `json:"translated_text"`
}

type imageRequest struct {
	Text        string `json:"text"`
	IncludeText *bool  `json:"include_text"` // defaults to true
	Mirror      bool   `json:"mirror"`
}

type pdfRequest struct {
	Text   string `json:"text"`
	Title  string `json:"title"`
	Mirror bool   `json:"mirror"`
}

type format struct {
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Endpoint    string `json:"endpoint"`
	Description string `json:"description"`
}

// validateText rejects empty text and text beyond the configured length.
func (s *Server) validateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.WithHint(errs.InvalidRequest("text must not be empty"),
			"send at least one non-space character")
	}
	if n := utf8.RuneCountInString(text); n > s.cfg.Limits.MaxTextLength {
		return errs.TooLarge("text has %d characters, limit is %d", n, s.cfg.Limits.MaxTextLength)
	}
	return nil
}

// transcribe validates text and converts it, enforcing the cell limit.
func (s *Server) transcribe(text string) ([]braille.Cell, error) {
	if err := s.validateText(text); err != nil {
		return nil, err
	}
	cells := s.tc.TextToCells(text)
	if len(cells) > s.cfg.Limits.MaxCells {
		return nil, errs.TooLarge("text produces %d cells, limit is %d", len(cells), s.cfg.Limits.MaxCells)
	}
	return cells, nil
}

func (s *Server) handleToBraille(w http.ResponseWriter, r *http.Request) {
	var req toBrailleRequest
	if err := s.readJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	cells, err := s.transcribe(req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	_ = writeJSON(w, http.StatusOK, toBrailleResponse{
		OriginalText:      req.Text,
		BrailleCells:      cells,
		BrailleStringRepr: dotnotation.Format(cells, dotnotation.Dots),
		BrailleUnicode:    dotnotation.Format(cells, dotnotation.Unicode),
	})
}

func (s *Server) handleToText(w http.ResponseWriter, r *http.Request) {
	var req toTextRequest
	if err := s.readJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.BrailleCells) == 0 {
		s.writeError(w, r, errs.InvalidRequest("braille_cells must not be empty"))
		return
	}
	if len(req.BrailleCells) > s.cfg.Limits.MaxCells {
		s.writeError(w, r, errs.TooLarge("%d cells, limit is %d", len(req.BrailleCells), s.cfg.Limits.MaxCells))
		return
	}
	cells, err := braille.CellsFromDotLists(req.BrailleCells)
	if err != nil {
		s.writeError(w, r, errs.WrapInvalidRequest(err, "braille_cells"))
		return
	}
	_ = writeJSON(w, http.StatusOK, toTextResponse{TranslatedText: s.tc.CellsToText(cells)})
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if err := s.readJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	cells, err := s.transcribe(req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(cells) > s.cfg.Limits.MaxImageCells {
		s.writeError(w, r, errs.TooLarge("image would have %d cells, limit is %d", len(cells), s.cfg.Limits.MaxImageCells))
		return
	}
	caption := ""
	if req.IncludeText == nil || *req.IncludeText {
		caption = req.Text
	}
	opts := s.render
	opts.Mirror = req.Mirror
	var buf bytes.Buffer
	if err := render.PNG(&buf, cells, caption, opts); err != nil {
		s.writeError(w, r, errs.WrapRender(err, "png"))
		return
	}
	writeAttachment(w, "image/png", "braille.png", buf.Bytes())
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	var req pdfRequest
	if err := s.readJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	cells, err := s.transcribe(req.Text)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	title := req.Title
	if title == "" {
		title = s.cfg.Render.PDFTitle
	}
	opts := s.render
	opts.Mirror = req.Mirror
	var buf bytes.Buffer
	if err := render.PDF(&buf, cells, req.Text, title, opts); err != nil {
		s.writeError(w, r, errs.WrapRender(err, "pdf"))
		return
	}
	writeAttachment(w, "application/pdf", "braille.pdf", buf.Bytes())
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	p := s.cfg.Server.APIPrefix
	_ = writeJSON(w, http.StatusOK, map[string]interface{}{
		"formats": []format{
			{"png", "image/png", p + "/generation/image", "Raster image of one row of cells"},
			{"pdf", "application/pdf", p + "/generation/pdf", "A4 document with source text and cells"},
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":    "braille",
		"version":    s.Version,
		"table":      s.tc.Symbols().Identifier,
		"api_prefix": s.cfg.Server.APIPrefix,
		"uptime":     time.Since(s.started).Round(time.Second).String(),
	})
}
