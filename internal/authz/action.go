package authz

// Action names an operation requested against a resource or resource type.
type Action string

// Generic actions.
const (
	ActionViewAny Action = "viewAny"
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Lead actions.
const (
	ActionAssign     Action = "assign"
	ActionExport     Action = "export"
	ActionImport     Action = "import"
	ActionBulkUpdate Action = "bulkUpdate"
)

// Offer actions.
const (
	ActionPublish          Action = "publish"
	ActionUnpublish        Action = "unpublish"
	ActionManageAutomation Action = "manageAutomation"
	ActionDuplicate        Action = "duplicate"
	ActionViewAnalytics    Action = "viewAnalytics"
)

// KPI actions.
const (
	ActionConfigure       Action = "configure"
	ActionSetTargets      Action = "setTargets"
	ActionConfigureAlerts Action = "configureAlerts"
	ActionCreateCustom    Action = "createCustom"
	ActionViewDashboard   Action = "viewDashboard"
)

// Report actions.
const (
	ActionGenerate      Action = "generate"
	ActionViewSales     Action = "viewSales"
	ActionViewMarketing Action = "viewMarketing"
	ActionViewFinancial Action = "viewFinancial"
	ActionViewHR        Action = "viewHR"
)

// Business actions.
const (
	ActionInvite             Action = "invite"
	ActionRemoveUser         Action = "removeUser"
	ActionUpdateSettings     Action = "updateSettings"
	ActionManageIntegrations Action = "manageIntegrations"
	ActionManageSubscription Action = "manageSubscription"
)

// Platform actions.
const (
	ActionListAllBusinesses Action = "listAllBusinesses"
)
