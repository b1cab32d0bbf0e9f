package cli

var commands = []command{
	{name: "login", usage: "login [-password p] <username>", summary: "sign in and store the access token", run: runLogin},
	{name: "logout", usage: "logout", summary: "discard the stored access token", run: runLogout},
	{name: "status", usage: "status", summary: "show the stored credential", run: runStatus},
	{name: "whoami", usage: "whoami", summary: "show the signed in user", run: runWhoami},
	{name: "dashboard", usage: "dashboard", summary: "practice overview", run: runDashboard},

	{name: "clients list", usage: "clients list [-search s] [-status s] [-priority p] [-sort key] [-order asc|desc] [-page n] [-per-page n]", summary: "list clients", run: runClientsList},
	{name: "clients get", usage: "clients get <id>", summary: "show a client", run: runClientsGet},
	{name: "clients create", usage: "clients create -name n [-email e] [...]", summary: "create a client", run: runClientsCreate},
	{name: "clients delete", usage: "clients delete <id>...", summary: "delete clients", run: runClientsDelete},
	{name: "clients projects", usage: "clients projects <id>", summary: "list a client's projects", run: runClientsProjects},
	{name: "clients invoices", usage: "clients invoices <id>", summary: "list a client's invoices", run: runClientsInvoices},

	{name: "invoices list", usage: "invoices list [-status s] [-client id]", summary: "list invoices", run: runInvoicesList},
	{name: "invoices get", usage: "invoices get <id>", summary: "show an invoice", run: runInvoicesGet},

	{name: "users list", usage: "users list [-role r] [-search s]", summary: "list users", run: runUsersList},
	{name: "users permissions", usage: "users permissions", summary: "list permissions", run: runUsersPermissions},

	{name: "projects list", usage: "projects list [-status s] [-client id]", summary: "list projects", run: runProjectsList},
	{name: "tasks list", usage: "tasks list [-status s] [-priority p] [-project id]", summary: "list tasks", run: runTasksList},

	{name: "compliance list", usage: "compliance list [-status s] [-type t]", summary: "list compliance filings", run: runComplianceList},
	{name: "compliance monitor", usage: "compliance monitor [-client id] [-type t]", summary: "run compliance checks", run: runComplianceMonitor},

	{name: "extract", usage: "extract <file> <type>", summary: "extract data from a document", run: runExtract},
	{name: "batch", usage: "batch <type> <file>...", summary: "extract data from several documents", run: runBatch},
	{name: "reconcile gst", usage: "reconcile gst <client-id> <period>", summary: "reconcile GST for a period", run: runReconcileGST},
	{name: "reconcile tds", usage: "reconcile tds <client-id> <quarter>", summary: "reconcile TDS for a quarter", run: runReconcileTDS},
	{name: "anomalies", usage: "anomalies <client-id> [type]", summary: "detect anomalies in client data", run: runAnomalies},
	{name: "ai accuracy", usage: "ai accuracy", summary: "show extraction accuracy", run: runAIAccuracy},
}
