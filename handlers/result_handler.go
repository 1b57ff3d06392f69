package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aging_curve/models"
	"aging_curve/utils"
)

// GetResultHandler godoc
// @Summary 결과 조회
// @Description 결과 id로 입력값과 분석 결과를 조회 (삭제된 결과도 조회 가능)
// @Tags result
// @Produce json
// @Param resultId path string true "결과 ID"
// @Success 200 {object} models.ResultResponse "성공"
// @Failure 404 {object} models.ErrorResponse "결과 없음"
// @Failure 500 {object} models.ErrorResponse "서버 오류"
// @Router /api/v1/result/{resultId} [get]
func (h *Handler) GetResultHandler(w http.ResponseWriter, r *http.Request) {
	rec, err := h.results.GetResult(r.Context(), chi.URLParam(r, "resultId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteFormattedJSON(w, http.StatusOK, models.NewResultResponse(rec))
}
