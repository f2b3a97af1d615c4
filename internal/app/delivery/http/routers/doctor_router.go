package routers

import (
	"labclinics-service/internal/app/delivery/http/middlewares"
	"labclinics-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", doctorController.ListDoctors)
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/stream", doctorController.StreamDoctors)
	router.Get("/{doctorID}", doctorController.GetDoctor)
	router.Put("/{doctorID}", doctorController.UpdateDoctor)
	router.Patch("/{doctorID}/status", doctorController.UpdateDoctorStatus)
	router.Delete("/{doctorID}", doctorController.DeleteDoctor)
	router.Post("/{doctorID}/photo", doctorController.UploadDoctorPhoto)
}
