package system_status

var systemStatusService = &SystemStatusService{}
var systemStatusController = &SystemStatusController{
	systemStatusService,
}

func GetSystemStatusController() *SystemStatusController {
	return systemStatusController
}
