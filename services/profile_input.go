package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"aging_curve/models"
)

// profileInput 规范化后的请求字段，校验规则写在 tag 上
type profileInput struct {
	BirthDate   string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	BirthTime   string `json:"birthTime" validate:"required_if=RequireTime true,omitempty,datetime=15:04"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	IsMarried   string `json:"isMarried" validate:"required,oneof=Y N"`
	IsDating    string `json:"isDating" validate:"required_if=IsMarried N,omitempty,oneof=Y N"` // 已婚时忽略
	RequireTime bool   `json:"-"`
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息里使用 JSON 字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ProfileFromRequest 校验请求并组装 Profile；requireTime 为 false 时出生时间可省略（reInit）
func ProfileFromRequest(req models.AnalysisRequest, requireTime bool) (models.Profile, error) {
	in := profileInput{
		BirthDate:   strings.TrimSpace(req.BirthDate),
		BirthTime:   strings.TrimSpace(req.BirthTime),
		Gender:      strings.ToUpper(strings.TrimSpace(req.Gender)),
		IsMarried:   strings.ToUpper(strings.TrimSpace(req.IsMarried)),
		IsDating:    strings.ToUpper(strings.TrimSpace(req.IsDating)),
		RequireTime: requireTime,
	}
	if err := validate.Struct(in); err != nil {
		return models.Profile{}, validationError(err)
	}

	p := models.Profile{Birth: in.BirthDate, Gender: in.Gender, IsMarried: in.IsMarried}
	if in.BirthTime != "" {
		p.Birth = in.BirthDate + " " + in.BirthTime
	}
	if in.IsMarried == models.No {
		p.IsDating = in.IsDating
	}
	return p, nil
}

// validationError 取第一个字段错误：required 系列归为缺参，其余为格式错误
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	fe := fieldErrs[0]
	if strings.HasPrefix(fe.Tag(), "required") {
		return fmt.Errorf("%w: %s", ErrMissingParam, fe.Field())
	}
	if fe.Param() != "" {
		return fmt.Errorf("%w: %s must satisfy %s=%s", ErrValidation, fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%w: %s is invalid", ErrValidation, fe.Field())
}

// birthYear Birth 已经过校验，前四位即年份
func birthYear(birth string) int {
	if len(birth) < 4 {
		return 0
	}
	t, err := time.Parse("2006", birth[:4])
	if err != nil {
		return 0
	}
	return t.Year()
}
