package handlers

import (
	"fmt"
	"net/http"

	"aging_curve/models"
	"aging_curve/services"
	"aging_curve/utils"
)

// InitHandler godoc
// @Summary 에이징 커브 분석 시작
// @Description 같은 프로필의 ACTIVE 결과가 있으면 그대로 반환하고, 없으면 모델로 새로 생성해 저장
// @Tags aging
// @Accept json
// @Produce json
// @Param request body models.AnalysisRequest true "출생 정보"
// @Success 200 {object} models.AnalysisResponse "성공"
// @Failure 400 {object} models.ErrorResponse "입력 오류"
// @Failure 502 {object} models.ErrorResponse "모델 호출/해석 실패"
// @Failure 500 {object} models.ErrorResponse "서버 오류"
// @Router /api/v1/aging/init [post]
func (h *Handler) InitHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	res, err := h.analysis.Init(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteFormattedJSON(w, http.StatusOK, models.NewAnalysisResponse(res.ID, res.Result))
}

// ReInitHandler godoc
// @Summary 에이징 커브 다시 분석
// @Description 새 결과를 생성한 뒤 기존 ACTIVE 결과를 소프트 삭제하고 새 결과를 저장
// @Tags aging
// @Accept json
// @Produce json
// @Param request body models.AnalysisRequest true "출생 정보 (birthTime 선택)"
// @Success 200 {object} models.AnalysisResponse "성공"
// @Failure 400 {object} models.ErrorResponse "입력 오류"
// @Failure 502 {object} models.ErrorResponse "모델 호출/해석 실패"
// @Failure 500 {object} models.ErrorResponse "서버 오류"
// @Router /api/v1/aging/reInit [post]
func (h *Handler) ReInitHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		writeServiceError(w, r, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	res, err := h.analysis.ReInit(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	utils.WriteFormattedJSON(w, http.StatusOK, models.NewAnalysisResponse(res.ID, res.Result))
}
