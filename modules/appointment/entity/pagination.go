package entity

import "mentorhub/core/entity"

type PaginatedAppointments = entity.Pagination[AppointmentWithNames]
