// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package discovery exposes the catalog of every activity shipped by
// chaosaws, so hosting runners and the CLI can enumerate what is
// available without importing each service package themselves.
package discovery

import (
	"github.com/chaosaws/chaosaws/asg"
	"github.com/chaosaws/chaosaws/awslambda"
	"github.com/chaosaws/chaosaws/cloudwatch"
	"github.com/chaosaws/chaosaws/ec2"
	"github.com/chaosaws/chaosaws/ec2os"
	"github.com/chaosaws/chaosaws/ecs"
	"github.com/chaosaws/chaosaws/eks"
	"github.com/chaosaws/chaosaws/elasticache"
	"github.com/chaosaws/chaosaws/elbv2"
	"github.com/chaosaws/chaosaws/emr"
	"github.com/chaosaws/chaosaws/fis"
	"github.com/chaosaws/chaosaws/iam"
	"github.com/chaosaws/chaosaws/msk"
	"github.com/chaosaws/chaosaws/rds"
	"github.com/chaosaws/chaosaws/route53"
	"github.com/chaosaws/chaosaws/s3"
	"github.com/chaosaws/chaosaws/ssm"
	"github.com/chaosaws/chaosaws/xray"
)

// Kind tells actions (fault injections) apart from probes (state
// checks).
type Kind string

const (
	KindAction Kind = "action"
	KindProbe  Kind = "probe"
)

// Activity describes one entry of the catalog. Func holds the actual
// function so callers can bind it with their preferred invocation
// machinery; its signature always starts with a context and the
// service API interface.
type Activity struct {
	Name        string
	Module      string
	Kind        Kind
	Description string
	Func        any
}

// Discover returns the full activity catalog. The registry is kept
// explicit rather than reflective so a missing or renamed activity
// shows up as a compile error here.
func Discover() []Activity {
	return catalog
}

var catalog = []Activity{
	// ec2
	{"stop_instance", "ec2", KindAction, "Stop a single EC2 instance.", ec2.StopInstance},
	{"stop_instances", "ec2", KindAction, "Stop the given EC2 instances.", ec2.StopInstances},
	{"stop_random_instance", "ec2", KindAction, "Stop a random instance matching the filters.", ec2.StopRandomInstance},
	{"stop_random_instance_az", "ec2", KindAction, "Stop a random instance in an availability zone.", ec2.StopRandomInstanceAZ},
	{"stop_entire_az", "ec2", KindAction, "Stop every instance in an availability zone.", ec2.StopEntireAZ},
	{"terminate_instance", "ec2", KindAction, "Terminate a single EC2 instance.", ec2.TerminateInstance},
	{"describe_instances", "ec2", KindProbe, "Describe the instances matching the filters.", ec2.DescribeInstances},
	{"count_instances", "ec2", KindProbe, "Count the instances matching the filters.", ec2.CountInstances},

	// asg
	{"suspend_processes", "asg", KindAction, "Suspend scaling processes of auto-scaling groups.", asg.SuspendProcesses},
	{"resume_processes", "asg", KindAction, "Resume scaling processes of auto-scaling groups.", asg.ResumeProcesses},
	{"describe_auto_scaling_groups", "asg", KindProbe, "Describe auto-scaling groups by name or tags.", asg.DescribeAutoScalingGroups},
	{"desired_equals_healthy", "asg", KindProbe, "Check desired capacity equals healthy instances.", asg.DesiredEqualsHealthy},
	{"desired_equals_healthy_by_tags", "asg", KindProbe, "Check desired equals healthy for tagged groups.", asg.DesiredEqualsHealthyByTags},
	{"wait_desired_equals_healthy", "asg", KindProbe, "Wait until desired capacity equals healthy instances.", asg.WaitDesiredEqualsHealthy},
	{"wait_desired_equals_healthy_by_tags", "asg", KindProbe, "Wait until desired equals healthy for tagged groups.", asg.WaitDesiredEqualsHealthyByTags},
	{"wait_desired_not_equals_healthy_by_tags", "asg", KindProbe, "Wait until desired diverges from healthy for tagged groups.", asg.WaitDesiredNotEqualsHealthyByTags},
	{"is_scaling_in_progress", "asg", KindProbe, "Check whether any tagged group is scaling.", asg.IsScalingInProgress},
	{"process_is_suspended", "asg", KindProbe, "Check whether scaling processes are suspended.", asg.ProcessIsSuspended},
	{"has_subnets", "asg", KindProbe, "Check groups are attached to the given subnets.", asg.HasSubnets},

	// ecs
	{"stop_task", "ecs", KindAction, "Stop a single ECS task.", ecs.StopTask},
	{"delete_service", "ecs", KindAction, "Scale an ECS service to zero and delete it.", ecs.DeleteService},
	{"delete_random_service", "ecs", KindAction, "Delete a random ECS service of a cluster.", ecs.DeleteRandomService},
	{"delete_random_service_matching", "ecs", KindAction, "Delete a random ECS service matching a filter.", ecs.DeleteRandomServiceMatching},
	{"delete_cluster", "ecs", KindAction, "Delete an ECS cluster.", ecs.DeleteCluster},
	{"deregister_container_instance", "ecs", KindAction, "Deregister an ECS container instance.", ecs.DeregisterContainerInstance},
	{"service_is_deploying", "ecs", KindProbe, "Check whether an ECS service has a deployment in flight.", ecs.ServiceIsDeploying},
	{"all_desired_tasks_running", "ecs", KindProbe, "Check an ECS service runs its desired task count.", ecs.AllDesiredTasksRunning},

	// eks
	{"create_cluster", "eks", KindAction, "Create an EKS cluster.", eks.CreateCluster},
	{"delete_cluster", "eks", KindAction, "Delete an EKS cluster.", eks.DeleteCluster},
	{"terminate_random_nodes", "eks", KindAction, "Terminate random worker nodes of an EKS cluster.", eks.TerminateRandomNodes},
	{"describe_cluster", "eks", KindProbe, "Describe an EKS cluster.", eks.DescribeCluster},
	{"list_clusters", "eks", KindProbe, "List the EKS clusters.", eks.ListClusters},

	// emr
	{"modify_cluster", "emr", KindAction, "Change the step concurrency of an EMR cluster.", emr.ModifyCluster},
	{"modify_instance_fleet", "emr", KindAction, "Change the target capacities of an EMR instance fleet.", emr.ModifyInstanceFleet},
	{"modify_instance_groups_instance_count", "emr", KindAction, "Change the instance count of an EMR instance group.", emr.ModifyInstanceGroupsInstanceCount},
	{"modify_instance_groups_shrink_policy", "emr", KindAction, "Change the shrink policy of an EMR instance group.", emr.ModifyInstanceGroupsShrinkPolicy},
	{"describe_cluster", "emr", KindProbe, "Describe an EMR cluster.", emr.DescribeCluster},
	{"describe_instance_fleet", "emr", KindProbe, "Describe an EMR instance fleet.", emr.DescribeInstanceFleet},
	{"describe_instance_group", "emr", KindProbe, "Describe an EMR instance group.", emr.DescribeInstanceGroup},
	{"list_cluster_fleet_instances", "emr", KindProbe, "List the instances of an EMR instance fleet.", emr.ListClusterFleetInstances},
	{"list_cluster_group_instances", "emr", KindProbe, "List the instances of an EMR instance group.", emr.ListClusterGroupInstances},
	{"list_clusters", "emr", KindProbe, "List the EMR clusters.", emr.ListClusters},

	// msk
	{"reboot_broker", "msk", KindAction, "Reboot brokers of an MSK cluster.", msk.RebootBroker},
	{"delete_cluster", "msk", KindAction, "Delete an MSK cluster.", msk.DeleteCluster},
	{"describe_cluster", "msk", KindProbe, "Describe an MSK cluster.", msk.DescribeCluster},
	{"get_bootstrap_servers", "msk", KindProbe, "Get the bootstrap servers of an MSK cluster.", msk.GetBootstrapServers},

	// rds
	{"failover_db_cluster", "rds", KindAction, "Force a failover of an RDS DB cluster.", rds.FailoverDBCluster},
	{"reboot_db_instance", "rds", KindAction, "Reboot an RDS DB instance.", rds.RebootDBInstance},
	{"instance_status", "rds", KindProbe, "Get the status of DB instances.", rds.InstanceStatus},
	{"cluster_status", "rds", KindProbe, "Get the status of DB clusters.", rds.ClusterStatus},
	{"cluster_membership_count", "rds", KindProbe, "Count the members of a DB cluster.", rds.ClusterMembershipCount},

	// elasticache
	{"reboot_cache_clusters", "elasticache", KindAction, "Reboot nodes of ElastiCache clusters.", elasticache.RebootCacheClusters},
	{"delete_cache_clusters", "elasticache", KindAction, "Delete ElastiCache clusters.", elasticache.DeleteCacheClusters},
	{"delete_replication_groups", "elasticache", KindAction, "Delete ElastiCache replication groups.", elasticache.DeleteReplicationGroups},
	{"describe_cache_cluster", "elasticache", KindProbe, "Describe an ElastiCache cluster.", elasticache.DescribeCacheCluster},
	{"get_cache_node_count", "elasticache", KindProbe, "Get the node count of an ElastiCache cluster.", elasticache.GetCacheNodeCount},
	{"get_cache_node_status", "elasticache", KindProbe, "Get the node status of an ElastiCache cluster.", elasticache.GetCacheNodeStatus},

	// awslambda
	{"put_function_concurrency", "awslambda", KindAction, "Throttle a Lambda function with reserved concurrency.", awslambda.PutFunctionConcurrency},
	{"delete_function_concurrency", "awslambda", KindAction, "Remove the reserved concurrency of a Lambda function.", awslambda.DeleteFunctionConcurrency},
	{"get_function_concurrency", "awslambda", KindProbe, "Get the reserved concurrency of a Lambda function.", awslambda.GetFunctionConcurrency},

	// elbv2
	{"deregister_random_target", "elbv2", KindAction, "Deregister a random target of a target group.", elbv2.DeregisterRandomTarget},
	{"set_security_groups", "elbv2", KindAction, "Replace the security groups of load balancers.", elbv2.SetSecurityGroups},
	{"set_subnets", "elbv2", KindAction, "Replace the subnets of load balancers.", elbv2.SetSubnets},
	{"delete_load_balancers", "elbv2", KindAction, "Delete load balancers.", elbv2.DeleteLoadBalancers},
	{"targets_health_count", "elbv2", KindProbe, "Count targets of target groups by health state.", elbv2.TargetsHealthCount},
	{"all_targets_healthy", "elbv2", KindProbe, "Check every target of the target groups is healthy.", elbv2.AllTargetsHealthy},

	// s3
	{"delete_object", "s3", KindAction, "Delete an object from a bucket.", s3.DeleteObject},
	{"toggle_versioning", "s3", KindAction, "Toggle the versioning state of a bucket.", s3.ToggleVersioning},
	{"bucket_exists", "s3", KindProbe, "Check whether a bucket exists.", s3.BucketExists},
	{"object_exists", "s3", KindProbe, "Check whether an object exists in a bucket.", s3.ObjectExists},

	// route53
	{"associate_vpc_with_zone", "route53", KindAction, "Associate a VPC with a hosted zone.", route53.AssociateVPCWithZone},
	{"disassociate_vpc_from_zone", "route53", KindAction, "Disassociate a VPC from a hosted zone.", route53.DisassociateVPCFromZone},
	{"get_hosted_zone", "route53", KindProbe, "Get a hosted zone.", route53.GetHostedZone},
	{"get_health_check_status", "route53", KindProbe, "Get the status of a health check.", route53.GetHealthCheckStatus},
	{"get_dns_answer", "route53", KindProbe, "Resolve a record through a hosted zone.", route53.GetDNSAnswer},

	// ssm
	{"create_document", "ssm", KindAction, "Create an SSM document from a local file.", ssm.CreateDocument},
	{"send_command", "ssm", KindAction, "Run an SSM document on instances.", ssm.SendCommand},
	{"delete_document", "ssm", KindAction, "Delete an SSM document.", ssm.DeleteDocument},

	// cloudwatch
	{"put_rule", "cloudwatch", KindAction, "Create or update an EventBridge rule.", cloudwatch.PutRule},
	{"put_rule_targets", "cloudwatch", KindAction, "Attach targets to an EventBridge rule.", cloudwatch.PutRuleTargets},
	{"enable_rule", "cloudwatch", KindAction, "Enable an EventBridge rule.", cloudwatch.EnableRule},
	{"disable_rule", "cloudwatch", KindAction, "Disable an EventBridge rule.", cloudwatch.DisableRule},
	{"delete_rule", "cloudwatch", KindAction, "Delete an EventBridge rule.", cloudwatch.DeleteRule},
	{"remove_rule_targets", "cloudwatch", KindAction, "Remove targets from an EventBridge rule.", cloudwatch.RemoveRuleTargets},
	{"set_alarm_state", "cloudwatch", KindAction, "Force the state of a CloudWatch alarm.", cloudwatch.SetAlarmState},
	{"get_alarm_state_value", "cloudwatch", KindProbe, "Get the state of a CloudWatch alarm.", cloudwatch.GetAlarmStateValue},
	{"get_metric_statistics", "cloudwatch", KindProbe, "Get one statistic of a CloudWatch metric.", cloudwatch.GetMetricStatistics},

	// xray
	{"get_trace_summaries", "xray", KindProbe, "Get X-Ray trace summaries for a time window.", xray.GetTraceSummaries},
	{"get_traces", "xray", KindProbe, "Get the newest X-Ray traces for a time window.", xray.GetTraces},
	{"get_most_recent_trace", "xray", KindProbe, "Get the most recent X-Ray trace.", xray.GetMostRecentTrace},
	{"get_most_recent_trace_segments", "xray", KindProbe, "Get the decoded segments of the most recent trace.", xray.GetMostRecentTraceSegments},
	{"get_service_graph", "xray", KindProbe, "Get the X-Ray service graph for a time window.", xray.GetServiceGraph},

	// fis
	{"start_experiment", "fis", KindAction, "Start an FIS experiment from a template.", fis.StartExperiment},
	{"get_experiment", "fis", KindProbe, "Get the state of an FIS experiment.", fis.GetExperiment},

	// iam
	{"create_policy", "iam", KindAction, "Create an IAM policy.", iam.CreatePolicy},
	{"attach_role_policy", "iam", KindAction, "Attach an IAM policy to a role.", iam.AttachRolePolicy},
	{"detach_role_policy", "iam", KindAction, "Detach an IAM policy from a role.", iam.DetachRolePolicy},
	{"get_policy", "iam", KindProbe, "Get an IAM policy.", iam.GetPolicy},

	// ec2os
	{"burn_cpu", "ec2os", KindAction, "Spin all cores of instances at 100%.", ec2os.BurnCPU},
	{"fill_disk", "ec2os", KindAction, "Fill the disk of instances with a large file.", ec2os.FillDisk},
	{"burn_io", "ec2os", KindAction, "Hammer the disk of instances with writes.", ec2os.BurnIO},
	{"network_latency", "ec2os", KindAction, "Add latency to the egress traffic of instances.", ec2os.NetworkLatency},
	{"network_loss", "ec2os", KindAction, "Drop egress packets of instances.", ec2os.NetworkLoss},
	{"network_corruption", "ec2os", KindAction, "Corrupt egress packets of instances.", ec2os.NetworkCorruption},
	{"network_advanced", "ec2os", KindAction, "Apply custom netem parameters on instances.", ec2os.NetworkAdvanced},
	{"kill_process", "ec2os", KindAction, "Signal processes by name on instances.", ec2os.KillProcess},
	{"os_advanced", "ec2os", KindAction, "Run a remote script from S3 on instances.", ec2os.OSAdvanced},
	{"describe_instance", "ec2os", KindProbe, "Describe a single EC2 instance.", ec2os.DescribeInstance},
}
