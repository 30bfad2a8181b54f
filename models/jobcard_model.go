package models

import (
	"packflow/controllers/idgen"
	"packflow/types"
	"strings"

	"gorm.io/gorm"
)

// Production stage tags as stored in the job card stage list.
const (
	StageSlitting = "1"
	StagePrinting = "2"
	StageCutting  = "3"
)

// StageList is the comma-delimited set of stage tags a job card passes
// through, e.g. "1,3". The column format is kept for compatibility with the
// existing data; all membership tests must go through Has, which is boundary
// aware ("13" does not contain "3").
type StageList string

func (s StageList) Has(tag string) bool {
	if s == "" || tag == "" {
		return false
	}
	for _, part := range strings.Split(string(s), ",") {
		if strings.TrimSpace(part) == tag {
			return true
		}
	}
	return false
}

func (s StageList) List() []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(string(s), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

type JobCard struct {
	gorm.Model
	ID           types.SnowflakeID `json:"id" gorm:"primary_key"`
	JobCardNo    string    `json:"job_card_no" gorm:"unique"`
	CustomerID   uint      `json:"customer_id"`
	ParticularID uint      `json:"particular_id"`
	Stages       StageList `json:"stages" gorm:"type:varchar(16)"`
	SlittingDone bool      `json:"slitting_done"`
	PrintingDone bool      `json:"printing_done"`
	CuttingDone  bool      `json:"cutting_done"`
	Remarks      string    `json:"remarks"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

func (j *JobCard) BeforeCreate(tx *gorm.DB) (err error) {
	j.ID = types.SnowflakeID(idgen.GenerateID())
	return
}
