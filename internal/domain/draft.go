package domain

// DraftSlot names one of the persisted form slots of a draft session.
type DraftSlot string

const (
	SlotUserType          DraftSlot = "user_type"
	SlotAdditionalInfo    DraftSlot = "additional_info"
	SlotProjectExperience DraftSlot = "project_experience"
	SlotResumeData        DraftSlot = "resume_data"
	SlotSelectedModel     DraftSlot = "selected_model"
)

// DraftSlots lists every slot in a stable order.
var DraftSlots = []DraftSlot{
	SlotUserType,
	SlotAdditionalInfo,
	SlotProjectExperience,
	SlotResumeData,
	SlotSelectedModel,
}

func (s DraftSlot) Valid() bool {
	for _, known := range DraftSlots {
		if s == known {
			return true
		}
	}
	return false
}

// ProjectDraft is the shape the project form persists in its slot.
type ProjectDraft struct {
	Projects []ProjectExperience `json:"projects"`
}
