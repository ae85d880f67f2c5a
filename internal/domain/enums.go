package domain

// ServiceType identifies the engineering discipline a submission relates to.
// Values match what the website forms send.
type ServiceType string

const (
	ServiceAutomation   ServiceType = "automation"
	ServiceElectrical   ServiceType = "electrical-installations"
	ServiceSolar        ServiceType = "solar-energy"
	ServiceMaintenance  ServiceType = "maintenance"
	ServicePlanning     ServiceType = "industrial-planning"
	ServiceOther        ServiceType = "other"
)

func (s ServiceType) String() string { return string(s) }

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceAutomation, ServiceElectrical, ServiceSolar,
		ServiceMaintenance, ServicePlanning, ServiceOther:
		return true
	}
	return false
}

// BudgetRange is the optional budget bucket on a quote request.
type BudgetRange string

const (
	BudgetUnder10K     BudgetRange = "under-10k"
	Budget10KTo50K     BudgetRange = "10k-50k"
	Budget50KTo100K    BudgetRange = "50k-100k"
	BudgetOver100K     BudgetRange = "over-100k"
	BudgetNotSpecified BudgetRange = "not-specified"
)

func (b BudgetRange) String() string { return string(b) }

func (b BudgetRange) IsValid() bool {
	switch b {
	case BudgetUnder10K, Budget10KTo50K, Budget50KTo100K, BudgetOver100K, BudgetNotSpecified:
		return true
	}
	return false
}

// ProjectTimeline is the optional timeline bucket on a quote request.
type ProjectTimeline string

const (
	TimelineUrgent       ProjectTimeline = "urgent"
	TimelineOneToThree   ProjectTimeline = "1-3-months"
	TimelineThreeToSix   ProjectTimeline = "3-6-months"
	TimelineFlexible     ProjectTimeline = "flexible"
	TimelineNotSpecified ProjectTimeline = "not-specified"
)

func (t ProjectTimeline) String() string { return string(t) }

func (t ProjectTimeline) IsValid() bool {
	switch t {
	case TimelineUrgent, TimelineOneToThree, TimelineThreeToSix, TimelineFlexible, TimelineNotSpecified:
		return true
	}
	return false
}
