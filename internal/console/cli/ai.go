package cli

import (
	"context"

	"github.com/aussiebroadwan/practiceconsole/pkg/consolesdk"
)

func runExtract(ctx context.Context, e *env, args []string) error {
	if len(args) != 2 {
		return usagef("expected a file and an extraction type")
	}

	doc, err := consolesdk.DocumentFromFile(args[0])
	if err != nil {
		return err
	}

	result, err := e.api.AI.ExtractDocumentData(ctx, doc, args[1])
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}

func runBatch(ctx context.Context, e *env, args []string) error {
	if len(args) < 2 {
		return usagef("expected an extraction type and at least one file")
	}

	docs := make([]consolesdk.Document, 0, len(args)-1)
	for _, path := range args[1:] {
		doc, err := consolesdk.DocumentFromFile(path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	result, err := e.api.AI.BatchProcessDocuments(ctx, docs, args[0])
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}

func runReconcileGST(ctx context.Context, e *env, args []string) error {
	clientID, period, err := reconcileArgs(args)
	if err != nil {
		return err
	}

	result, err := e.api.AI.GSTReconciliation(ctx, clientID, period)
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}

func runReconcileTDS(ctx context.Context, e *env, args []string) error {
	clientID, quarter, err := reconcileArgs(args)
	if err != nil {
		return err
	}

	result, err := e.api.AI.TDSReconciliation(ctx, clientID, quarter)
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}

func reconcileArgs(args []string) (int64, string, error) {
	if len(args) != 2 {
		return 0, "", usagef("expected a client id and a period")
	}
	clientID, err := parseID(args[0])
	if err != nil {
		return 0, "", err
	}
	return clientID, args[1], nil
}

func runAnomalies(ctx context.Context, e *env, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return usagef("expected a client id and an optional data type")
	}
	clientID, err := parseID(args[0])
	if err != nil {
		return err
	}

	var dataType string
	if len(args) == 2 {
		dataType = args[1]
	}

	result, err := e.api.AI.AnomalyDetection(ctx, clientID, dataType)
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}

func runAIAccuracy(ctx context.Context, e *env, _ []string) error {
	result, err := e.api.AI.Accuracy(ctx)
	if err != nil {
		return err
	}
	return e.out.JSON(result)
}
