package models

import "time"

// AnalysisSummary 总结
type AnalysisSummary struct {
	Theme  string `json:"theme"`
	Advice string `json:"advice"`
}

// PersonalityAndAptitude 性格与天赋
type PersonalityAndAptitude struct {
	CoreTrait string `json:"core_trait"`
	Strength  string `json:"strength"`
	Weakness  string `json:"weakness"`
}

// RelationshipAndFamily 感情与家庭
type RelationshipAndFamily struct {
	LoveStyle       string `json:"love_style"`
	PartnerAffinity string `json:"partner_affinity"`
	SocialPattern   string `json:"social_pattern"`
}

// WealthAndCareer 财富与事业
type WealthAndCareer struct {
	WealthType      string `json:"wealth_type"`
	BestCareer      string `json:"best_career"`
	FinancialAdvice string `json:"financial_advice"`
}

// AnalysisResult 四个分区的结构化分析结果，所有字段始终序列化（可为空串）
type AnalysisResult struct {
	AnalysisSummary        AnalysisSummary        `json:"analysis_summary" jsonschema:"required"`
	PersonalityAndAptitude PersonalityAndAptitude `json:"personality_and_aptitude" jsonschema:"required"`
	RelationshipAndFamily  RelationshipAndFamily  `json:"relationship_and_family" jsonschema:"required"`
	WealthAndCareer        WealthAndCareer        `json:"wealth_and_career" jsonschema:"required"`
}

// EmptyFields 返回值为空的字段名（json 名）
func (r AnalysisResult) EmptyFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"theme", r.AnalysisSummary.Theme},
		{"advice", r.AnalysisSummary.Advice},
		{"core_trait", r.PersonalityAndAptitude.CoreTrait},
		{"strength", r.PersonalityAndAptitude.Strength},
		{"weakness", r.PersonalityAndAptitude.Weakness},
		{"love_style", r.RelationshipAndFamily.LoveStyle},
		{"partner_affinity", r.RelationshipAndFamily.PartnerAffinity},
		{"social_pattern", r.RelationshipAndFamily.SocialPattern},
		{"wealth_type", r.WealthAndCareer.WealthType},
		{"best_career", r.WealthAndCareer.BestCareer},
		{"financial_advice", r.WealthAndCareer.FinancialAdvice},
	}
	var empty []string
	for _, f := range fields {
		if f.value == "" {
			empty = append(empty, f.name)
		}
	}
	return empty
}

// ResultStatus 记录状态
type ResultStatus string

const (
	StatusActive  ResultStatus = "ACTIVE"
	StatusDeleted ResultStatus = "DELETED"
)

// ResultRecord 持久化的分析记录
type ResultRecord struct {
	ID         string         `json:"resultId"`
	ProfileKey string         `json:"-"`
	UserInput  Profile        `json:"inputdata"`
	ResultData AnalysisResult `json:"data"`
	Status     ResultStatus   `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	DeletedAt  *time.Time     `json:"deletedAt,omitempty"`
}
