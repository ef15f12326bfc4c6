// adminctl is a small operator CLI over the staffly admin API. It is
// mainly used for incident cleanup when the dashboard is unavailable.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"staffly_backend/pkg/adminclient"
)

const usage = `Usage: adminctl [-base URL] [-token TOKEN] <command> [args]

Commands:
  jobs [status]                      list jobs, optionally by status
  job-status <id> <status>           move a job along its lifecycle (e.g. active)
  cancel-job <id>                    cancel a job and notify applicants
  apps [status]                      list applications
  approve-app <id> [notes]           approve a pending application
  reject-app <id> <reason>           reject a pending application
  txns [status]                      list payment transactions
  approve-txn <id>                   release a payment to the worker
  reject-txn <id> <reason>           reject a pending payment
  refund-txn <id> [reason]           claw back a paid transaction
`

func main() {
	base := flag.String("base", envOr("STAFFLY_API_BASE", "http://localhost:8080"), "admin API base URL")
	token := flag.String("token", os.Getenv("STAFFLY_API_TOKEN"), "admin bearer token")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cli := adminclient.New(*base, *token, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cli, args); err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cli *adminclient.Client, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "jobs":
		f := adminclient.JobFilter{}
		if len(rest) > 0 {
			f.Status = rest[0]
		}
		jobs, pg, err := cli.ListJobs(ctx, f)
		if err != nil {
			return err
		}
		for _, j := range jobs {
			fmt.Printf("%s  %-12s  %s\n", j.JobID, j.JobStatus, j.JobTitle)
		}
		printPage(pg)
		return nil

	case "job-status":
		if len(rest) < 2 {
			return errors.New("job-status needs a job id and a status")
		}
		job, err := cli.UpdateJobStatus(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("job %s is now %s\n", job.JobID, job.JobStatusLabel)
		return nil

	case "cancel-job":
		if len(rest) < 1 {
			return errors.New("cancel-job needs a job id")
		}
		job, err := cli.CancelJob(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("job %s is now %s\n", job.JobID, job.JobStatusLabel)
		return nil

	case "apps":
		f := adminclient.ApplicationFilter{}
		if len(rest) > 0 {
			f.Status = rest[0]
		}
		apps, pg, err := cli.ListApplications(ctx, f)
		if err != nil {
			return err
		}
		for _, a := range apps {
			fmt.Printf("%s  %-10s  %s\n", a.ApplicationID, a.ApplicationStatus, a.ApplicationWorkerName)
		}
		printPage(pg)
		return nil

	case "approve-app":
		if len(rest) < 1 {
			return errors.New("approve-app needs an application id")
		}
		notes := ""
		if len(rest) > 1 {
			notes = rest[1]
		}
		app, err := cli.ApproveApplication(ctx, rest[0], notes)
		if err != nil {
			return err
		}
		fmt.Printf("application %s is now %s\n", app.ApplicationID, app.ApplicationStatusLabel)
		return nil

	case "reject-app":
		if len(rest) < 2 {
			return errors.New("reject-app needs an application id and a reason")
		}
		app, err := cli.RejectApplication(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("application %s is now %s\n", app.ApplicationID, app.ApplicationStatusLabel)
		return nil

	case "txns":
		f := adminclient.TransactionFilter{}
		if len(rest) > 0 {
			f.Status = rest[0]
		}
		txns, pg, err := cli.ListTransactions(ctx, f)
		if err != nil {
			return err
		}
		for _, t := range txns {
			fmt.Printf("%s  %-10s  %-9s  $%.2f  %s\n",
				t.TransactionID, t.TransactionStatus, t.TransactionRateType, t.TransactionAmount, t.TransactionWorkerName)
		}
		printPage(pg)
		return nil

	case "approve-txn":
		if len(rest) < 1 {
			return errors.New("approve-txn needs a transaction id")
		}
		res, err := cli.ApproveTransaction(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("transaction %s is now %s\n", res.Transaction.TransactionID, res.Transaction.TransactionStatusLabel)
		if res.RemainingToDeduct != nil {
			fmt.Printf("worker still owes $%.2f (deducted from future payouts)\n", *res.RemainingToDeduct)
		}
		return nil

	case "reject-txn":
		if len(rest) < 2 {
			return errors.New("reject-txn needs a transaction id and a reason")
		}
		txn, err := cli.RejectTransaction(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Printf("transaction %s is now %s\n", txn.TransactionID, txn.TransactionStatusLabel)
		return nil

	case "refund-txn":
		if len(rest) < 1 {
			return errors.New("refund-txn needs a transaction id")
		}
		reason := ""
		if len(rest) > 1 {
			reason = rest[1]
		}
		res, err := cli.RefundTransaction(ctx, rest[0], reason)
		if err != nil {
			return err
		}
		fmt.Printf("transaction %s is now %s\n", res.Transaction.TransactionID, res.Transaction.TransactionStatusLabel)
		if res.RemainingToDeduct != nil {
			fmt.Printf("worker still owes $%.2f (deducted from future payouts)\n", *res.RemainingToDeduct)
		}
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printPage(pg *adminclient.Pagination) {
	if pg != nil {
		fmt.Printf("page %d/%d (%d total)\n", pg.Page, pg.TotalPages, pg.Total)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
