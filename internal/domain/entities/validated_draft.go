package entities

type ValidatedDraft struct {
	*Draft
}

func NewValidatedDraft(draft *Draft) (*ValidatedDraft, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	return &ValidatedDraft{Draft: draft}, nil
}

func (vd *ValidatedDraft) GetDraft() *Draft {
	return vd.Draft
}
