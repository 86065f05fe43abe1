package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/services"
)

type RequestHandler struct {
	log              *logger.Logger
	requestService   services.RequestService
	keywordService   services.KeywordService
	sourceURLService services.SourceURLService
}

func NewRequestHandler(
	log *logger.Logger,
	requestService services.RequestService,
	keywordService services.KeywordService,
	sourceURLService services.SourceURLService,
) *RequestHandler {
	return &RequestHandler{
		log:              log.With("handler", "RequestHandler"),
		requestService:   requestService,
		keywordService:   keywordService,
		sourceURLService: sourceURLService,
	}
}

func (h *RequestHandler) Get(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "request id must be a valid UUID", err)
		return
	}
	request, err := h.requestService.GetRequestByID(c.Request.Context(), nil, requestID)
	if err != nil {
		RespondServiceError(c, "request lookup failed", err)
		return
	}
	RespondOK(c, "request found", gin.H{"request": request})
}

func (h *RequestHandler) ListKeywords(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "request id must be a valid UUID", err)
		return
	}
	if _, err := h.requestService.GetRequestByID(c.Request.Context(), nil, requestID); err != nil {
		RespondServiceError(c, "request lookup failed", err)
		return
	}
	keywords, err := h.keywordService.ListKeywordsByRequest(c.Request.Context(), nil, requestID)
	if err != nil {
		h.log.Error("ListKeywords failed", "error", err, "request_id", requestID)
		RespondServiceError(c, "keyword listing failed", err)
		return
	}
	RespondOK(c, "keywords listed", gin.H{"keywords": keywords, "count": len(keywords)})
}

func (h *RequestHandler) ListSourceURLs(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "request id must be a valid UUID", err)
		return
	}
	if _, err := h.requestService.GetRequestByID(c.Request.Context(), nil, requestID); err != nil {
		RespondServiceError(c, "request lookup failed", err)
		return
	}
	urls, err := h.sourceURLService.ListSourceURLsByRequest(c.Request.Context(), nil, requestID)
	if err != nil {
		h.log.Error("ListSourceURLs failed", "error", err, "request_id", requestID)
		RespondServiceError(c, "source url listing failed", err)
		return
	}
	RespondOK(c, "source urls listed", gin.H{"source_urls": urls, "count": len(urls)})
}
