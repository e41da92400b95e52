package sqlinline

const QInsertCampaign = `--sql 4f2c91d3-7b0a-4e61-9c55-18a3b6e0d2f7
insert into campaigns(id, title, short_description, description, goal_minor, category_id, creator_id, urgency, end_date, featured, status, created_at, updated_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::bigint, $6::uuid, $7::uuid, $8::text, $9::timestamptz, $10::boolean, $11::text, now(), now());
`

const QSelectCampaignByID = `--sql 8d1e47aa-3c92-4b08-a6f1-52c7d9e83b04
select id, title, short_description, description, goal_minor, category_id, creator_id, urgency, end_date, featured, status, created_at
from campaigns
where id = $1::uuid;
`

const QListApprovedCampaigns = `--sql b6a0f8c2-95d4-4713-8e2a-c41f7d65a9e8
select id, title, short_description, description, goal_minor, category_id, creator_id, urgency, end_date, featured, status, created_at
from campaigns
where status = 'APPROVED'
order by created_at asc, id asc;
`

const QUpdateCampaignStatus = `--sql e3c58b91-6f27-49d0-b8a4-07d1f2c6e53a
update campaigns
set status = $2::text, updated_at = now()
where id = $1::uuid;
`

const QCountApprovedByCategory = `--sql 29f7d4e6-81b3-4c5a-9d08-f6a2c70b41e9
select category_id, count(*)
from campaigns
where status = 'APPROVED'
group by category_id;
`
