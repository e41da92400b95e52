package sqlinline

const QInsertCategory = `--sql c4e82f19-5a6d-4b37-90c1-3ed5a8f47b26
insert into categories(id, name, description, color, icon, created_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::text, now())
on conflict (name) do nothing;
`

const QSelectCategoryByID = `--sql 1d9b63f7-82c4-4e50-a7d8-b5f09c2e64a1
select id, name, description, color, icon, created_at
from categories
where id = $1::uuid;
`

const QListCategories = `--sql 67a1e0d5-49fb-4c82-b3e6-0d84f17c592b
select id, name, description, color, icon, created_at
from categories
order by name asc;
`
