// Package main 提供 sub0bus 演示入口
//
// 在两条独立的总线之间通过 TCP 回环传递传感器读数：
// 发送端周期性发布，出站桥接上线；接收端轮询入站桥接并打印。
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	sub0bus "github.com/sub0bus/go-sub0bus"
	"github.com/sub0bus/go-sub0bus/internal/transport/iostream"
	"github.com/sub0bus/go-sub0bus/pkg/lib/log"
)

var logger = log.Logger("sub0bus/cmd")

var (
	interval = flag.Duration("interval", time.Second, "发布间隔")
	logLevel = flag.String("log-level", "info", "日志级别 (debug/info/warn/error)")
)

// airPressure 演示用消息类型
type airPressure struct {
	Hectopascals float32
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

func main() {
	flag.Parse()
	log.SetLevel(parseLevel(*logLevel))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sub0bus-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	defer ln.Close()

	// 接收端
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			logger.Error("接受连接失败", "err", err)
			return
		}
		if err := receive(conn); err != nil {
			logger.Error("接收端退出", "err", err)
		}
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	return send(conn, stop)
}

// send 发送端：本地发布经出站桥接写入连接
func send(conn net.Conn, stop <-chan os.Signal) error {
	bus, err := sub0bus.New()
	if err != nil {
		return err
	}
	defer bus.Close()

	id, err := bus.RegisterType(0, "demo.airPressure", airPressure{})
	if err != nil {
		return err
	}

	stream := iostream.NewConnStream(conn, 0)
	wb, err := bus.NewWriterBridge(stream, id)
	if err != nil {
		return err
	}

	value := float32(1013.25)
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := bus.Publish(id, airPressure{Hectopascals: value}); err != nil {
				return err
			}
			if err := wb.Err(); err != nil {
				return err
			}
			logger.Info("已发布", "hectopascals", value)
			value += 0.25
		case <-stop:
			return nil
		}
	}
}

// receive 接收端：轮询入站桥接并打印收到的读数
func receive(conn net.Conn) error {
	bus, err := sub0bus.New()
	if err != nil {
		return err
	}
	defer bus.Close()

	id, err := bus.RegisterType(0, "demo.airPressure", airPressure{})
	if err != nil {
		return err
	}

	sub, err := bus.SubscribeFunc(id, func(data any) {
		fmt.Printf("收到气压读数: %.2f hPa\n", data.(airPressure).Hectopascals)
	})
	if err != nil {
		return err
	}
	defer sub.Close()

	stream := iostream.NewConnStream(conn, 0)
	rb, err := bus.NewReaderBridge(stream, id)
	if err != nil {
		return err
	}

	for !stream.AtEnd() {
		if err := rb.Drain(); err != nil {
			return err
		}
	}
	return nil
}
