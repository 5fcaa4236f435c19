package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"interview-go/internal/demo"
	"interview-go/internal/log"
)

var Version = "0.1.0"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "singleton"
	app.Version = Version
	app.Usage = "singleton attacks and defenses"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
			Usage: "debug, info, warn, error",
		},
	}

	app.Commands = []cli.Command{
		cmdRun,
		cmdList,
	}

	// 和原来的 main 一样, 默认只跑反射攻击
	app.Action = func(c *cli.Context) error {
		return run(c, []string{"reflect"})
	}

	return app
}

var cmdRun = cli.Command{
	Name:  "run",
	Usage: "run one or more attacks",
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "attack, a",
			Usage: "attack name, repeatable",
		},
	},
	Action: func(c *cli.Context) error {
		attacks := c.StringSlice("attack")
		if len(attacks) == 0 {
			attacks = []string{"reflect"}
		}

		return run(c, attacks)
	},
}

var cmdList = cli.Command{
	Name:  "list",
	Usage: "list attack names",
	Action: func(c *cli.Context) error {
		for _, name := range demo.Names() {
			fmt.Fprintln(c.App.Writer, name)
		}

		return nil
	},
}

// run 日志级别不合法或者攻击名未知时返回错误, main 以 1 退出
func run(c *cli.Context, attacks []string) error {
	level, err := logrus.ParseLevel(c.GlobalString("log-level"))
	if err != nil {
		return err
	}
	logger := log.New(level)
	if c.App.ErrWriter != nil {
		logger.Out = c.App.ErrWriter
	}

	runner := demo.NewRunner(nil)
	runner.Subscribe(demo.PrintReporter{W: c.App.Writer})
	runner.Subscribe(demo.LogReporter{Log: log.Prefixed(logger, "demo")})

	for _, name := range attacks {
		a, err := demo.NewAttack(name, logger)
		if err != nil {
			return err
		}

		runner.SetAttack(a)
		runner.Run(context.Background())
	}

	return nil
}
