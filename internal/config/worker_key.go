package config

type WorkerKeyStruct struct {
	AuditIntentQueue string
}

var WorkerKey = &WorkerKeyStruct{
	AuditIntentQueue: "audit_intent_queue",
}
