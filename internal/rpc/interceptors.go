package rpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		log.Debug("rpc started", "method", info.FullMethod)

		resp, err := handler(ctx, req)

		duration := time.Since(start)
		if err != nil {
			log.Warn("rpc failed",
				"method", info.FullMethod,
				"code", status.Code(err).String(),
				"duration", duration,
				"error", err,
			)
		} else {
			log.Info("rpc completed", "method", info.FullMethod, "duration", duration)
		}

		return resp, err
	}
}

func LoggingStreamInterceptor(log *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		log.Debug("stream started", "method", info.FullMethod)
		err := handler(srv, stream)

		if err != nil {
			log.Warn("stream ended with error", "method", info.FullMethod, "error", err)
		} else {
			log.Debug("stream completed", "method", info.FullMethod)
		}
		return err
	}
}
