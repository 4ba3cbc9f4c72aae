package storage

import (
	"anubha-web/internal/app/config"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	minioClient, err := minio.New(fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port), &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Error initializing MinIO client: %v", err)
	}

	log.Println("Successfully connected to MinIO")
	return minioClient
}
