package authz

import (
	"fmt"

	apperrors "bizsuite/internal/errors"
	"bizsuite/internal/models"
)

// LeadPolicy governs leads.
var LeadPolicy = NewPolicy("lead", map[Action]Rule{
	ActionViewAny:    OnType(AnyMember()),
	ActionCreate:     OnType(AnyMember()),
	ActionView:       OnInstance(AnyMember()),
	ActionUpdate:     OnInstance(AnyMember()),
	ActionDelete:     OnInstance(AnyMember()),
	ActionAssign:     OnInstance(RoleIn(ManagementRoles)),
	ActionExport:     OnType(RoleIn(ManagementRoles)),
	ActionImport:     OnType(RoleIn(ManagementRoles)),
	ActionBulkUpdate: OnType(RoleIn(ManagementRoles)),
})

// OfferPolicy governs offers.
var OfferPolicy = NewPolicy("offer", map[Action]Rule{
	ActionViewAny:          OnType(AnyMember()),
	ActionCreate:           OnType(AnyMember()),
	ActionView:             OnInstance(AnyMember()),
	ActionUpdate:           OnInstance(AnyMember()),
	ActionDelete:           OnInstance(AnyMember()),
	ActionDuplicate:        OnInstance(AnyMember()),
	ActionViewAnalytics:    OnInstance(AnyMember()),
	ActionPublish:          OnInstance(RoleIn(OfferManagerRoles)),
	ActionUnpublish:        OnInstance(RoleIn(OfferManagerRoles)),
	ActionManageAutomation: OnInstance(RoleIn(OfferManagerRoles)),
})

// ReportPolicy governs reports and generated report files. Category views
// are separate gates and are not implied by view.
var ReportPolicy = NewPolicy("report", map[Action]Rule{
	ActionViewAny:       OnType(AnyMember()),
	ActionCreate:        OnType(AnyMember()),
	ActionView:          OnInstance(AnyMember()),
	ActionUpdate:        OnInstance(AnyMember()),
	ActionDelete:        OnInstance(RoleIn(AdminRoles)),
	ActionGenerate:      OnType(AnyMember()),
	ActionViewSales:     OnType(AnyMember()),
	ActionViewMarketing: OnType(AnyMember()),
	ActionViewFinancial: OnType(RoleIn(FinanceViewerRoles)),
	ActionViewHR:        OnType(RoleIn(HRViewerRoles)),
})

// KPIPolicy governs KPI daily actuals and the KPI configuration.
var KPIPolicy = NewPolicy("kpi", map[Action]Rule{
	ActionViewAny:         OnType(AnyMember()),
	ActionCreate:          OnType(AnyMember()),
	ActionView:            OnInstance(AnyMember()),
	ActionUpdate:          OnInstance(AnyMember()),
	ActionDelete:          OnInstance(RoleIn(AdminRoles)),
	ActionExport:          OnType(AnyMember()),
	ActionViewDashboard:   OnType(AnyMember()),
	ActionConfigure:       OnType(RoleIn(ManagementRoles)),
	ActionSetTargets:      OnType(RoleIn(ManagementRoles)),
	ActionConfigureAlerts: OnType(RoleIn(ManagementRoles)),
	ActionCreateCustom:    OnType(RoleIn(CustomKPIRoles)),
})

// LeadFormPolicy governs lead capture forms.
var LeadFormPolicy = NewPolicy("lead_form", memberCRUD())

// CustdevSurveyPolicy governs customer development surveys.
var CustdevSurveyPolicy = NewPolicy("custdev_survey", memberCRUD())

func memberCRUD() map[Action]Rule {
	return map[Action]Rule{
		ActionViewAny: OnType(AnyMember()),
		ActionCreate:  OnType(AnyMember()),
		ActionView:    OnInstance(AnyMember()),
		ActionUpdate:  OnInstance(AnyMember()),
		ActionDelete:  OnInstance(AnyMember()),
	}
}

var policiesByKind = map[models.RecordKind]*Policy{
	models.KindLead:          LeadPolicy,
	models.KindOffer:         OfferPolicy,
	models.KindReport:        ReportPolicy,
	models.KindKPI:           KPIPolicy,
	models.KindLeadForm:      LeadFormPolicy,
	models.KindCustdevSurvey: CustdevSurveyPolicy,
}

// PolicyFor returns the policy governing a record kind.
func PolicyFor(kind models.RecordKind) (*Policy, error) {
	p, ok := policiesByKind[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownKind, kind)
	}
	return p, nil
}
