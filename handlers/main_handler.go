package handlers

import (
	"net/http"

	"aging_curve/models"
	"aging_curve/utils"
)

// MainInitHandler godoc
// @Summary 사이트 초기화
// @Description 서버(DB) 시간을 반환
// @Tags main
// @Produce json
// @Success 200 {object} models.MainResponse "성공"
// @Failure 500 {object} models.ErrorResponse "서버 오류"
// @Router /api/v1/main/init [get]
func (h *Handler) MainInitHandler(w http.ResponseWriter, r *http.Request) {
	now, err := h.main.ServerTime(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteFormattedJSON(w, http.StatusOK, models.MainResponse{
		Message: models.CodeMessages[models.CodeSuccess],
		Data:    models.ServerTime{Time: now},
	})
}

// HealthHandler 存活检查
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteFormattedJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
