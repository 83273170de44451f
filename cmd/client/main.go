package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"inspectrack/pkg/client"
)

const usage = `usage: client [flags] <command> [args]

commands:
  status <site-id> [YYYY-MM]
  history <device-id> [YYYY]
  dashboard [YYYY-MM]
  submit <device-id> <signature> [label=true|false ...]
`

func main() {
	var (
		server   = flag.String("server", "http://localhost:8080", "API base URL")
		password = flag.String("password", os.Getenv("ADMIN_PASSWORD"), "Admin password")
		id       = flag.String("id", "", "Client ID used in request ids")
		period   = flag.String("period", "", "Period for submit (YYYY-MM, default current month)")
		remarks  = flag.String("remarks", "", "Remarks for submit")
	)
	flag.Usage = func() { fmt.Fprint(flag.CommandLine.Output(), usage); flag.PrintDefaults() }
	flag.Parse()

	if *id == "" {
		hostname, _ := os.Hostname()
		*id = hostname
	}
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := client.NewClient(*server, *password, *id)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, c, args, *period, *remarks); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, args []string, period, remarks string) error {
	switch args[0] {
	case "status":
		if len(args) < 2 {
			return fmt.Errorf("status needs a site id")
		}
		st, err := c.SiteStatus(ctx, args[1], arg(args, 2))
		if err != nil {
			return err
		}
		fmt.Printf("period %s\n", st.Period)
		for _, d := range st.Devices {
			if d.ThisPeriodStatus == nil {
				fmt.Printf("  %-24s not inspected\n", d.Device.Name)
				continue
			}
			var parts []string
			for _, label := range d.Device.CheckItems {
				parts = append(parts, fmt.Sprintf("%s=%s", label, mark(d.ThisPeriodStatus, label)))
			}
			fmt.Printf("  %-24s %s\n", d.Device.Name, strings.Join(parts, " "))
		}
	case "history":
		if len(args) < 2 {
			return fmt.Errorf("history needs a device id")
		}
		h, err := c.DeviceHistory(ctx, args[1], arg(args, 2))
		if err != nil {
			return err
		}
		for _, e := range h.History {
			labels := make([]string, 0, len(e.Results))
			for l := range e.Results {
				labels = append(labels, l)
			}
			sort.Strings(labels)
			var parts []string
			for _, l := range labels {
				parts = append(parts, fmt.Sprintf("%s=%s", l, mark(e.Results, l)))
			}
			fmt.Printf("%s  #%d  %-16s %s\n", e.PeriodKey, e.InspectionID, e.Signature, strings.Join(parts, " "))
		}
	case "dashboard":
		d, err := c.Dashboard(ctx, arg(args, 1))
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d/%d inspected\n", d.Period, d.Inspected, d.Total)
		for _, it := range d.Items {
			state := "pending"
			if it.Inspected {
				state = "done"
			}
			fmt.Printf("  %-24s %s\n", it.Device.Name, state)
		}
	case "submit":
		if len(args) < 3 {
			return fmt.Errorf("submit needs a device id and a signature")
		}
		results, err := parseResults(args[3:])
		if err != nil {
			return err
		}
		ins, err := c.Submit(ctx, args[1], client.Submission{
			PeriodKey: period,
			Results:   results,
			Signature: args[2],
			Remarks:   remarks,
		})
		if err != nil {
			return err
		}
		fmt.Printf("recorded inspection #%d for %s (%s)\n", ins.ID, ins.DeviceID, ins.PeriodKey)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func parseResults(pairs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		label, val, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("result %q must look like label=true", p)
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("result %q: %w", p, err)
		}
		out[strings.TrimSpace(label)] = b
	}
	return out, nil
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func mark(m map[string]bool, label string) string {
	v, ok := m[label]
	switch {
	case !ok:
		return "?"
	case v:
		return "ok"
	default:
		return "FAIL"
	}
}
