package v1

import "github.com/kmalyshev/beacon_response_system/internal/models"

// ModelToUserResponse преобразует доменную модель пользователя в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		UserID:         model.ID,
		Name:           model.Name,
		ContactInfo:    model.ContactInfo,
		IsHelper:       len(model.HelperSkills) > 0,
		HelperSkills:   model.HelperSkills,
		HelperMaxRange: model.HelperMaxRange,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToLocationSampleResponses преобразует историю перемещений в DTO
func ModelsToLocationSampleResponses(samples []*models.LocationSample) []*LocationSampleResponse {
	responses := make([]*LocationSampleResponse, len(samples))
	for i, sample := range samples {
		responses[i] = &LocationSampleResponse{
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
			Timestamp: sample.Timestamp,
		}
	}
	return responses
}

// DTOToCaseModel преобразует DTO создания обращения в доменную модель
func DTOToCaseModel(dto CreateCaseRequest) *models.Case {
	return &models.Case{
		CallerUserID:          dto.CallerUserID,
		Latitude:              dto.Latitude,
		Longitude:             dto.Longitude,
		Description:           dto.Description,
		RawProblemDescription: dto.RawProblemDescription,
	}
}

// ModelToCaseResponse преобразует доменную модель обращения в DTO для ответа
func ModelToCaseResponse(model *models.Case) *CaseResponse {
	return &CaseResponse{
		CaseID:                model.ID,
		CallerUserID:          model.CallerUserID,
		CaseGroupID:           model.CaseGroupID,
		Latitude:              model.Latitude,
		Longitude:             model.Longitude,
		Description:           model.Description,
		RawProblemDescription: model.RawProblemDescription,
		Urgency:               model.Urgency,
		DangerLevel:           model.DangerLevel,
		Status:                model.Status,
		CreatedAt:             model.CreatedAt,
		ResolvedAt:            model.ResolvedAt,
	}
}

// ModelsToNearbyCaseResponses преобразует слайс обращений с расстояниями в DTO
func ModelsToNearbyCaseResponses(models []*models.NearbyCase) []*NearbyCaseResponse {
	responses := make([]*NearbyCaseResponse, len(models))
	for i, model := range models {
		responses[i] = &NearbyCaseResponse{
			CaseResponse: *ModelToCaseResponse(&model.Case),
			DistanceKm:   model.DistanceKm,
		}
	}
	return responses
}

// ModelToGroupingResponse преобразует результат группировки в DTO для ответа
func ModelToGroupingResponse(model *models.GroupingResult) *GroupingResponse {
	return &GroupingResponse{
		GroupCreated: model.GroupCreated,
		CaseGroupID:  model.CaseGroupID,
		Cases:        model.Cases,
		CasesFound:   model.CasesFound,
	}
}

// ModelToRouteResponse преобразует оценку маршрута в DTO для ответа
func ModelToRouteResponse(model *models.RouteEstimate) *RouteEstimateResponse {
	return &RouteEstimateResponse{
		CaseID: model.CaseID,
		From: LocationSampleDTO{
			Latitude:  model.FromLatitude,
			Longitude: model.FromLongitude,
		},
		To: LocationSampleDTO{
			Latitude:  model.ToLatitude,
			Longitude: model.ToLongitude,
		},
		DistanceKm: model.DistanceKm,
		ETAMinutes: model.ETAMinutes,
	}
}

// ModelToCaseGroupResponse преобразует группу обращений в DTO для ответа
func ModelToCaseGroupResponse(model *models.CaseGroup) *CaseGroupResponse {
	return &CaseGroupResponse{
		CaseGroupID: model.ID,
		Label:       model.Label,
		CaseIDs:     model.CaseIDs,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToHelperMatchResponses преобразует слайс подобранных хелперов в DTO
func ModelsToHelperMatchResponses(models []*models.HelperMatch) []*HelperMatchResponse {
	responses := make([]*HelperMatchResponse, len(models))
	for i, model := range models {
		responses[i] = &HelperMatchResponse{
			UserID:      model.UserID,
			Name:        model.Name,
			ContactInfo: model.ContactInfo,
			Skills:      model.Skills,
			MaxRange:    model.HelperMaxRange,
			DistanceKm:  model.DistanceKm,
			LastLocation: LocationSampleDTO{
				Latitude:  model.Latitude,
				Longitude: model.Longitude,
			},
			LastUpdated: model.LastUpdated,
		}
	}
	return responses
}

// ModelToAssignmentResponse преобразует доменную модель назначения в DTO
func ModelToAssignmentResponse(model *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		AssignmentID: model.ID,
		CaseID:       model.CaseID,
		HelperUserID: model.HelperUserID,
		AssignedAt:   model.AssignedAt,
		CompletedAt:  model.CompletedAt,
		Notes:        model.Notes,
		Outcome:      model.Outcome,
	}
}

// ModelsToAssignmentResponses преобразует слайс назначений в слайс DTO
func ModelsToAssignmentResponses(models []*models.Assignment) []*AssignmentResponse {
	responses := make([]*AssignmentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAssignmentResponse(model)
	}
	return responses
}

// ModelsToAssignmentWithCaseResponses преобразует назначения с обращениями в DTO
func ModelsToAssignmentWithCaseResponses(models []*models.AssignmentWithCase) []*AssignmentWithCaseResponse {
	responses := make([]*AssignmentWithCaseResponse, len(models))
	for i, model := range models {
		responses[i] = &AssignmentWithCaseResponse{
			AssignmentResponse: *ModelToAssignmentResponse(&model.Assignment),
			Case: AssignmentCaseSummary{
				Latitude:    model.CaseLatitude,
				Longitude:   model.CaseLongitude,
				Description: model.CaseDescription,
				Urgency:     model.CaseUrgency,
				DangerLevel: model.CaseDangerLevel,
				Status:      model.CaseStatus,
			},
		}
	}
	return responses
}

// DTOToMessageModel преобразует DTO отправки сообщения в доменную модель
func DTOToMessageModel(dto CreateMessageRequest) *models.Message {
	return &models.Message{
		AssignmentID: dto.AssignmentID,
		CaseID:       dto.CaseID,
		Sender:       dto.Sender,
		MessageType:  dto.MessageType,
		MessageText:  dto.MessageText,
		InResponseTo: dto.InResponseTo,
	}
}

// ModelToMessageResponse преобразует доменную модель сообщения в DTO
func ModelToMessageResponse(model *models.Message) *MessageResponse {
	return &MessageResponse{
		MessageID:    model.ID,
		AssignmentID: model.AssignmentID,
		CaseID:       model.CaseID,
		Sender:       model.Sender,
		MessageType:  model.MessageType,
		MessageText:  model.MessageText,
		InResponseTo: model.InResponseTo,
		IsRead:       model.IsRead,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToMessageResponses преобразует слайс сообщений в слайс DTO
func ModelsToMessageResponses(models []*models.Message) []*MessageResponse {
	responses := make([]*MessageResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToMessageResponse(model)
	}
	return responses
}
